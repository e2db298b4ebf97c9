package oportunidade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, o *Oportunidade) error
	Listar(db *gorm.DB, limit int) ([]Oportunidade, error)
	BuscarPorID(db *gorm.DB, id uint) (*Oportunidade, error)
	Atualizar(db *gorm.DB, o *Oportunidade) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *Oportunidade) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, limit int) ([]Oportunidade, error) {
	var list []Oportunidade
	q := db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Oportunidade, error) {
	var o Oportunidade
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Oportunidade) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Oportunidade{}, id).Error
}
