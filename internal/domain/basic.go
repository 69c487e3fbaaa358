package domain

import "github.com/shopspring/decimal"

// Warehouse is a physical storage site.
type Warehouse struct {
	ID            ID     `json:"id,omitempty" yaml:"id,omitempty"`
	WarehouseCode string `json:"warehouseCode" yaml:"warehouse_code"`
	WarehouseName string `json:"warehouseName" yaml:"warehouse_name" validate:"required,max=64"`
	Remark        string `json:"remark,omitempty" yaml:"remark,omitempty"`
	OrderNum      int    `json:"orderNum" yaml:"order_num"`
	BaseEntity    `yaml:",inline"`
}

type WarehouseListParams struct {
	PageQuery     `yaml:",inline"`
	AuditQuery    `yaml:",inline"`
	ID            ID     `json:"id,omitempty" yaml:"id,omitempty"`
	WarehouseCode string `json:"warehouseCode,omitempty" yaml:"warehouse_code,omitempty"`
	WarehouseName string `json:"warehouseName,omitempty" yaml:"warehouse_name,omitempty"`
	Remark        string `json:"remark,omitempty" yaml:"remark,omitempty"`
}

// Area is a storage zone inside a warehouse.
type Area struct {
	ID          ID     `json:"id,omitempty" yaml:"id,omitempty"`
	AreaCode    string `json:"areaCode" yaml:"area_code"`
	AreaName    string `json:"areaName" yaml:"area_name" validate:"required,max=64"`
	WarehouseID ID     `json:"warehouseId" yaml:"warehouse_id" validate:"required"`
	Remark      string `json:"remark,omitempty" yaml:"remark,omitempty"`
	BaseEntity  `yaml:",inline"`
}

type AreaListParams struct {
	PageQuery   `yaml:",inline"`
	AuditQuery  `yaml:",inline"`
	ID          ID     `json:"id,omitempty" yaml:"id,omitempty"`
	AreaCode    string `json:"areaCode,omitempty" yaml:"area_code,omitempty"`
	AreaName    string `json:"areaName,omitempty" yaml:"area_name,omitempty"`
	WarehouseID ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	Remark      string `json:"remark,omitempty" yaml:"remark,omitempty"`
}

// ItemBrand is a product brand.
type ItemBrand struct {
	ID         ID     `json:"id,omitempty" yaml:"id,omitempty"`
	BrandName  string `json:"brandName" yaml:"brand_name" validate:"required,max=64"`
	BaseEntity `yaml:",inline"`
}

type ItemBrandListParams struct {
	PageQuery  `yaml:",inline"`
	AuditQuery `yaml:",inline"`
	ID         ID     `json:"id,omitempty" yaml:"id,omitempty"`
	BrandName  string `json:"brandName,omitempty" yaml:"brand_name,omitempty"`
}

// ItemCategory is a node of the product category tree.
type ItemCategory struct {
	ID           ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ParentID     ID     `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	CategoryName string `json:"categoryName" yaml:"category_name" validate:"required,max=64"`
	OrderNum     int    `json:"orderNum" yaml:"order_num"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	BaseEntity   `yaml:",inline"`
}

type ItemCategoryListParams struct {
	PageQuery    `yaml:",inline"`
	AuditQuery   `yaml:",inline"`
	ID           ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ParentID     ID     `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	CategoryName string `json:"categoryName,omitempty" yaml:"category_name,omitempty"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Item is a product; its sellable variants are SKUs.
type Item struct {
	ID           ID        `json:"id,omitempty" yaml:"id,omitempty"`
	ItemCode     string    `json:"itemCode" yaml:"item_code"`
	ItemName     string    `json:"itemName" yaml:"item_name" validate:"required,max=128"`
	ItemCategory ID        `json:"itemCategory,omitempty" yaml:"item_category,omitempty"`
	Unit         string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	ItemBrand    ID        `json:"itemBrand,omitempty" yaml:"item_brand,omitempty"`
	Remark       string    `json:"remark,omitempty" yaml:"remark,omitempty"`
	Sku          []ItemSku `json:"sku,omitempty" yaml:"sku,omitempty" validate:"dive"`
	BaseEntity   `yaml:",inline"`
}

type ItemListParams struct {
	PageQuery    `yaml:",inline"`
	AuditQuery   `yaml:",inline"`
	ID           ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ItemCode     string `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	ItemName     string `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCategory ID     `json:"itemCategory,omitempty" yaml:"item_category,omitempty"`
	Unit         string `json:"unit,omitempty" yaml:"unit,omitempty"`
	ItemBrand    ID     `json:"itemBrand,omitempty" yaml:"item_brand,omitempty"`
	Remark       string `json:"remark,omitempty" yaml:"remark,omitempty"`
}

// ItemSku is a stock-keeping unit of an item. The item* fields are
// denormalized by the backend on reads.
type ItemSku struct {
	ID           ID              `json:"id,omitempty" yaml:"id,omitempty"`
	SkuName      string          `json:"skuName" yaml:"sku_name" validate:"required,max=128"`
	ItemID       ID              `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	Barcode      string          `json:"barcode,omitempty" yaml:"barcode,omitempty"`
	SkuCode      string          `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	Length       decimal.Decimal `json:"length" yaml:"length" validate:"gte=0"`
	Width        decimal.Decimal `json:"width" yaml:"width" validate:"gte=0"`
	Height       decimal.Decimal `json:"height" yaml:"height" validate:"gte=0"`
	GrossWeight  decimal.Decimal `json:"grossWeight" yaml:"gross_weight" validate:"gte=0"`
	NetWeight    decimal.Decimal `json:"netWeight" yaml:"net_weight" validate:"gte=0"`
	CostPrice    decimal.Decimal `json:"costPrice" yaml:"cost_price" validate:"gte=0"`
	SellingPrice decimal.Decimal `json:"sellingPrice" yaml:"selling_price" validate:"gte=0"`
	ItemName     string          `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode     string          `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	ItemCategory ID              `json:"itemCategory,omitempty" yaml:"item_category,omitempty"`
	ItemBrand    ID              `json:"itemBrand,omitempty" yaml:"item_brand,omitempty"`
	BaseEntity   `yaml:",inline"`
}

// Margin is the selling price minus the cost price.
func (s ItemSku) Margin() decimal.Decimal {
	return s.SellingPrice.Sub(s.CostPrice)
}

type ItemSkuListParams struct {
	PageQuery  `yaml:",inline"`
	AuditQuery `yaml:",inline"`
	ID         ID     `json:"id,omitempty" yaml:"id,omitempty"`
	SkuName    string `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	ItemID     ID     `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	Barcode    string `json:"barcode,omitempty" yaml:"barcode,omitempty"`
	SkuCode    string `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	ItemName   string `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode   string `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
}

// MerchantType classifies a trading partner.
type MerchantType int

const (
	MerchantSupplier MerchantType = 1
	MerchantCustomer MerchantType = 2
	MerchantBoth     MerchantType = 3
)

// Merchant is a supplier or customer.
type Merchant struct {
	ID            ID           `json:"id,omitempty" yaml:"id,omitempty"`
	MerchantCode  string       `json:"merchantCode" yaml:"merchant_code"`
	MerchantName  string       `json:"merchantName" yaml:"merchant_name" validate:"required,max=128"`
	MerchantType  MerchantType `json:"merchantType" yaml:"merchant_type" validate:"oneof=1 2 3"`
	MerchantLevel string       `json:"merchantLevel,omitempty" yaml:"merchant_level,omitempty"`
	BankName      string       `json:"bankName,omitempty" yaml:"bank_name,omitempty"`
	BankAccount   string       `json:"bankAccount,omitempty" yaml:"bank_account,omitempty"`
	Address       string       `json:"address,omitempty" yaml:"address,omitempty"`
	Mobile        string       `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	Tel           string       `json:"tel,omitempty" yaml:"tel,omitempty"`
	ContactPerson string       `json:"contactPerson,omitempty" yaml:"contact_person,omitempty"`
	Email         string       `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Remark        string       `json:"remark,omitempty" yaml:"remark,omitempty"`
	BaseEntity    `yaml:",inline"`
}

type MerchantListParams struct {
	PageQuery     `yaml:",inline"`
	AuditQuery    `yaml:",inline"`
	ID            ID           `json:"id,omitempty" yaml:"id,omitempty"`
	MerchantCode  string       `json:"merchantCode,omitempty" yaml:"merchant_code,omitempty"`
	MerchantName  string       `json:"merchantName,omitempty" yaml:"merchant_name,omitempty"`
	MerchantType  MerchantType `json:"merchantType,omitempty" yaml:"merchant_type,omitempty"`
	MerchantLevel string       `json:"merchantLevel,omitempty" yaml:"merchant_level,omitempty"`
	Mobile        string       `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	ContactPerson string       `json:"contactPerson,omitempty" yaml:"contact_person,omitempty"`
}
