package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// assignID fills a zero primary key before insert so ids never depend on a
// database-side generator.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error              { assignID(&u.ID); return nil }
func (f *Follow) BeforeCreate(_ *gorm.DB) error            { assignID(&f.ID); return nil }
func (t *Tag) BeforeCreate(_ *gorm.DB) error               { assignID(&t.ID); return nil }
func (i *Ingredient) BeforeCreate(_ *gorm.DB) error        { assignID(&i.ID); return nil }
func (r *Recipe) BeforeCreate(_ *gorm.DB) error            { assignID(&r.ID); return nil }
func (ri *RecipeIngredient) BeforeCreate(_ *gorm.DB) error { assignID(&ri.ID); return nil }
func (f *Favourite) BeforeCreate(_ *gorm.DB) error         { assignID(&f.ID); return nil }
func (s *ShoppingCartEntry) BeforeCreate(_ *gorm.DB) error { assignID(&s.ID); return nil }
func (l *RecipeLink) BeforeCreate(_ *gorm.DB) error        { assignID(&l.ID); return nil }
