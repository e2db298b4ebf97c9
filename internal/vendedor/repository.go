package vendedor

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, v *Vendedor) error
	Listar(db *gorm.DB, somenteAtivos bool) ([]Vendedor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Vendedor, error)
	Atualizar(db *gorm.DB, v *Vendedor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Vendedor) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, somenteAtivos bool) ([]Vendedor, error) {
	var list []Vendedor
	q := db.Order("nome")
	if somenteAtivos {
		q = q.Where("ativo = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Vendedor, error) {
	var v Vendedor
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, v *Vendedor) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Vendedor{}, id).Error
}
