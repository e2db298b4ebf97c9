package formulario

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, reg *Registro) error
	BuscarUltimo(db *gorm.DB, tipo, numeroOPD string) (*Registro, error)
	ListarPorOPD(db *gorm.DB, numeroOPD string) ([]Registro, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, reg *Registro) error {
	return db.Create(reg).Error
}

func (r *repositoryImpl) BuscarUltimo(db *gorm.DB, tipo, numeroOPD string) (*Registro, error) {
	var reg Registro
	err := db.
		Where("tipo = ? AND numero_opd = ?", tipo, numeroOPD).
		Order("created_at DESC").
		First(&reg).Error
	return &reg, err
}

func (r *repositoryImpl) ListarPorOPD(db *gorm.DB, numeroOPD string) ([]Registro, error) {
	var list []Registro
	err := db.
		Where("numero_opd = ?", numeroOPD).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
