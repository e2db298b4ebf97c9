package atividade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, a *Atividade) error
	Listar(db *gorm.DB, limit int) ([]Atividade, error)
	BuscarPorID(db *gorm.DB, id uint) (*Atividade, error)
	Atualizar(db *gorm.DB, a *Atividade) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Atividade) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, limit int) ([]Atividade, error) {
	var list []Atividade
	q := db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Atividade, error) {
	var a Atividade
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, a *Atividade) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Atividade{}, id).Error
}
