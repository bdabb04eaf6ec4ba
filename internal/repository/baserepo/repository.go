package baserepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"catalogo/internal/domain"
	apperror "catalogo/internal/errors"
	"catalogo/internal/pkg/logger"
)

// Repository é o gateway CRUD genérico sobre qualquer entidade com identificador.
type Repository[T domain.Entity] interface {
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	SelectByID(ctx context.Context, id uint) (T, error)
	SelectAll(ctx context.Context) ([]T, error)
}

// GormRepository implementa Repository sobre o *gorm.DB.
// Cada operação adquire uma conexão do pool, executa e confirma imediatamente.
type GormRepository[T domain.Entity] struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
	name      string
}

// New cria o repositório da entidade T. name é usado nas mensagens ("Produto").
func New[T domain.Entity](db *gorm.DB, dbTimeout time.Duration, log logger.Logger, name string) *GormRepository[T] {
	return &GormRepository[T]{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
		name:      name,
	}
}

func (r *GormRepository[T]) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if r.DBTimeout <= 0 {
		return r.DB.WithContext(ctx), func() {}
	}
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	return r.DB.WithContext(ctxTimeout), cancel
}

// Insert persiste a entidade; o identificador é atribuído pelo banco e escrito em entity.
func (r *GormRepository[T]) Insert(ctx context.Context, entity *T) error {
	db, cancel := r.session(ctx)
	defer cancel()

	if err := db.Create(entity).Error; err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao inserir %s no DB.", r.name), err)
		return apperror.NewDBError(fmt.Sprintf("Falha ao inserir %s", r.name), err)
	}

	r.logger.Debug(fmt.Sprintf("%s inserido.", r.name), map[string]interface{}{"id": (*entity).GetID()})
	return nil
}

// Update substitui a linha inteira (não é um patch parcial).
// Um identificador inexistente resulta em NotFoundError; não há upsert.
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	db, cancel := r.session(ctx)
	defer cancel()

	id := (*entity).GetID()
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		return tx.Save(entity).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não existe na base de dados.", r.name, id))
	}
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao atualizar %s no DB.", r.name), err)
		return apperror.NewDBError(fmt.Sprintf("Falha ao atualizar %s", r.name), err)
	}

	r.logger.Debug(fmt.Sprintf("%s atualizado.", r.name), map[string]interface{}{"id": id})
	return nil
}

// Delete busca a entidade antes de remover; ausência vira NotFoundError.
func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	db, cancel := r.session(ctx)
	defer cancel()

	var existing T
	err := db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não existe na base de dados.", r.name, id))
	}
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao buscar %s para exclusão.", r.name), err)
		return apperror.NewDBError(fmt.Sprintf("Falha ao buscar %s", r.name), err)
	}

	if err := db.Delete(&existing).Error; err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao deletar %s no DB.", r.name), err)
		return apperror.NewDBError(fmt.Sprintf("Falha ao deletar %s", r.name), err)
	}

	r.logger.Debug(fmt.Sprintf("%s deletado.", r.name), map[string]interface{}{"id": id})
	return nil
}

// SelectByID devolve a entidade ou NotFoundError.
func (r *GormRepository[T]) SelectByID(ctx context.Context, id uint) (T, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var entity T
	err := db.First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero T
		return zero, apperror.NewNotFoundError(fmt.Sprintf("%s com ID %d não existe na base de dados.", r.name, id))
	}
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao buscar %s no DB.", r.name), err)
		var zero T
		return zero, apperror.NewDBError(fmt.Sprintf("Falha ao buscar %s", r.name), err)
	}
	return entity, nil
}

// SelectAll devolve a listagem completa na ordem padrão do banco.
func (r *GormRepository[T]) SelectAll(ctx context.Context) ([]T, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	entities := []T{}
	if err := db.Find(&entities).Error; err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao listar %s no DB.", r.name), err)
		return nil, apperror.NewDBError(fmt.Sprintf("Falha ao listar %s", r.name), err)
	}
	return entities, nil
}
