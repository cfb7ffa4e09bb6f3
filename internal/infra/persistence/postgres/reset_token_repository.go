package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// resetTokenRepository implements the domain.ResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Upsert stores the token, replacing any previous token and timestamp of the same email.
func (repo *resetTokenRepository) Upsert(ctx context.Context, token *entity.ResetToken) error {
	tokenM := &model.ResetTokenModel{
		Email:     token.Email,
		Token:     token.Token,
		CreatedAt: token.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert reset token")
	}

	return nil
}

// FindByToken retrieves the record holding the given token value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	var tokenM model.ResetTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return &entity.ResetToken{
		Email:     tokenM.Email,
		Token:     tokenM.Token,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// Consume deletes the record of email only while it still holds token.
func (repo *resetTokenRepository) Consume(ctx context.Context, email, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("email = ? AND token = ?", email, token).
		Delete(&model.ResetTokenModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}

	return result.RowsAffected == 1, nil
}
