package gql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"catalogo/internal/domain"
)

func produtoField(typ graphql.Output, description string, get func(domain.Produto) interface{}) *graphql.Field {
	return &graphql.Field{
		Type:        typ,
		Description: description,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			produto, ok := p.Source.(domain.Produto)
			if !ok {
				return nil, fmt.Errorf("fonte inesperada para Produto: %T", p.Source)
			}
			return get(produto), nil
		},
	}
}

var produtoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Produto",
	Fields: graphql.Fields{
		"id":          produtoField(graphql.Int, "Identificador", func(p domain.Produto) interface{} { return int(p.ID) }),
		"sku":         produtoField(graphql.String, "Código do produto", func(p domain.Produto) interface{} { return p.Sku }),
		"codigo":      produtoField(graphql.String, "Código interno", func(p domain.Produto) interface{} { return p.Codigo }),
		"name":        produtoField(graphql.String, "Nome do produto", func(p domain.Produto) interface{} { return p.Name }),
		"precoCompra": produtoField(graphql.Float, "Preço de Compra", func(p domain.Produto) interface{} { return p.PrecoCompra }),
		"precoVenda":  produtoField(graphql.Float, "Preço de Venda", func(p domain.Produto) interface{} { return p.PrecoVenda }),
	},
})

// NewSchema monta o schema somente leitura.
// "produtos" lê direto do banco, sem passar pelo repositório nem pelo validador.
func NewSchema(db *gorm.DB) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"produtos": &graphql.Field{
				Type:        graphql.NewList(produtoType),
				Description: "Lista todos os produtos",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var produtos []domain.Produto
					if err := db.WithContext(p.Context).Find(&produtos).Error; err != nil {
						return nil, fmt.Errorf("falha ao listar produtos: %w", err)
					}
					return produtos, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
