package naoconformidade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, nc *NaoConformidade) error
	Listar(db *gorm.DB, status string) ([]NaoConformidade, error)
	BuscarPorID(db *gorm.DB, id uint) (*NaoConformidade, error)
	Atualizar(db *gorm.DB, nc *NaoConformidade) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, nc *NaoConformidade) error {
	return db.Create(nc).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, status string) ([]NaoConformidade, error) {
	var list []NaoConformidade
	q := db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*NaoConformidade, error) {
	var nc NaoConformidade
	err := db.First(&nc, id).Error
	return &nc, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, nc *NaoConformidade) error {
	return db.Save(nc).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&NaoConformidade{}, id).Error
}
