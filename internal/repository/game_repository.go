package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) Create(game *model.Game) error {
	return r.DB.Create(game).Error
}

func (r *GameRepository) Update(game *model.Game) error {
	return r.DB.Save(game).Error
}

func (r *GameRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Game{}, id).Error
}

func (r *GameRepository) FindByID(id uint) (*model.Game, error) {
	var game model.Game
	if err := r.DB.First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) ListByTeacher(teacherID uint) ([]model.Game, error) {
	var games []model.Game
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&games).Error
	return games, err
}

func (r *GameRepository) ListAll() ([]model.Game, error) {
	var games []model.Game
	err := r.DB.Order("created_at DESC").Find(&games).Error
	return games, err
}
