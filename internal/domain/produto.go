package domain

// Produto representa o item do catálogo.
// @Description Produto do catálogo (código interno, SKU e preços).
type Produto struct {
	BaseEntity
	Name        string  `gorm:"column:Name;not null" json:"name" example:"Widget"`
	Codigo      string  `gorm:"column:Codigo;not null" json:"codigo" example:"W1"`
	PrecoCompra float64 `gorm:"column:PrecoCompra" json:"precoCompra" example:"5.00"`
	PrecoVenda  float64 `gorm:"column:PrecoVenda" json:"precoVenda" example:"9.99"`
	Sku         string  `gorm:"column:Sku;not null" json:"sku" example:"SKU1"`
}

// TableName fixa o nome da tabela em "Produto", sem a pluralização do gorm.
func (Produto) TableName() string {
	return "Produto"
}
