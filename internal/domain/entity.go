package domain

// Entity é a restrição usada pelo repositório genérico.
// Todo registro persistido expõe o identificador atribuído pelo banco.
type Entity interface {
	GetID() uint
}

// BaseEntity contribui o identificador único das entidades.
// O valor é atribuído pela camada de armazenamento no INSERT.
type BaseEntity struct {
	ID uint `gorm:"column:Id;primaryKey;autoIncrement" json:"id"`
}

// GetID implementa Entity.
func (b BaseEntity) GetID() uint { return b.ID }
