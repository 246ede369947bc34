package ledger

import (
	"errors"

	"gorm.io/gorm"

	"serraria-backend/internal/database"
	"serraria-backend/internal/models"
)

// Store: CRUD genérico sobre o banco. Cada entidade instancia o seu com a
// regra de validação própria; a mecânica de persistência é uma só, em vez de
// repetir o mesmo fetch/validate/submit em cada tela.
type Store[T any] struct {
	validate func(*T) error
}

func NewStore[T any](validate func(*T) error) *Store[T] {
	return &Store[T]{validate: validate}
}

func (s *Store[T]) Create(rec *T) error {
	if s.validate != nil {
		if err := s.validate(rec); err != nil {
			return err
		}
	}
	if err := database.DB.Create(rec).Error; err != nil {
		return &IOError{Op: "create", Err: err}
	}
	return nil
}

func (s *Store[T]) Get(id string) (*T, error) {
	var rec T
	err := database.DB.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &IOError{Op: "get", Err: err}
	}
	return &rec, nil
}

// Update: grava o registro completo já carregado (não há patch parcial).
func (s *Store[T]) Update(rec *T) error {
	if s.validate != nil {
		if err := s.validate(rec); err != nil {
			return err
		}
	}
	if err := database.DB.Save(rec).Error; err != nil {
		return &IOError{Op: "update", Err: err}
	}
	return nil
}

func (s *Store[T]) Delete(id string) error {
	var rec T
	res := database.DB.Delete(&rec, "id = ?", id)
	if res.Error != nil {
		return &IOError{Op: "delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List: todos os registros na ordem pedida (ex: "entry_date DESC").
func (s *Store[T]) List(order string) ([]T, error) {
	recs := make([]T, 0)
	q := database.DB
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, &IOError{Op: "list", Err: err}
	}
	return recs, nil
}

// SupplierNames: mapa id → nome para resolver a referência de fornecedor na
// leitura. Referência pendurada (fornecedor já excluído) fica fora do mapa e
// o chamador mostra "-".
func SupplierNames() (map[string]string, error) {
	var suppliers []models.Supplier
	if err := database.DB.Find(&suppliers).Error; err != nil {
		return nil, &IOError{Op: "suppliers", Err: err}
	}
	m := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		m[s.ID] = s.Name
	}
	return m, nil
}

// SupplierLabel: nome do fornecedor ou "-" quando a referência está vazia ou
// aponta para um registro excluído.
func SupplierLabel(names map[string]string, id *string) string {
	if id == nil || *id == "" {
		return "-"
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "-"
}
