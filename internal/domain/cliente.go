package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNombreLength matches the width of the nombre column.
const MaxNombreLength = 120

type Cliente struct {
	ID        uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	Nombre    string    `json:"nombre" gorm:"size:120;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index;<-:create"`
}

func (Cliente) TableName() string {
	return "clientes"
}
