package domain

// CodeSuccess is the envelope code the backend uses for a successful call.
const CodeSuccess = 200

// Result is the bare envelope returned by write operations.
type Result struct {
	Code int    `json:"code" yaml:"code"`
	Msg  string `json:"msg" yaml:"msg"`
}

// Success reports whether the backend accepted the call.
func (r Result) Success() bool { return r.Code == CodeSuccess }

// Status exposes the envelope header of any envelope type embedding Result.
func (r Result) Status() Result { return r }

// DataResult is the single-entity envelope: {code, msg, data}.
type DataResult[T any] struct {
	Result `yaml:",inline"`
	Data   T `json:"data" yaml:"data"`
}

// PageResult is the paginated envelope: {code, msg, total, rows}.
type PageResult[T any] struct {
	Result `yaml:",inline"`
	Total  int64 `json:"total" yaml:"total"`
	Rows   []T   `json:"rows" yaml:"rows"`
}

// Envelope is implemented by every response wrapper.
type Envelope interface {
	Status() Result
}

// TreeNode is an element of the tree-select payloads (item categories).
type TreeNode struct {
	ID       ID         `json:"id" yaml:"id"`
	ParentID ID         `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Label    string     `json:"label" yaml:"label"`
	Weight   int        `json:"weight,omitempty" yaml:"weight,omitempty"`
	Children []TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Walk visits n and all descendants depth-first, stopping when fn returns false.
func (n TreeNode) Walk(fn func(TreeNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// OrderNum reorders one node of a sortable tree (warehouses, item categories).
type OrderNum struct {
	ID       ID  `json:"id" yaml:"id"`
	OrderNum int `json:"orderNum" yaml:"order_num"`
}
