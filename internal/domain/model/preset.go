package model

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var presetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Preset is a named, stored package design that can be simulated on demand.
// Only inputs are stored; simulation results are always recomputed.
//
// @Description Named package design
type Preset struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name" example:"strawberry-clamshell"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" example:"500 g clamshell, 4 laser perforations"`
	Input       SimulationInput    `bson:"input" json:"input"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
} // @name Preset

// ValidPresetName reports whether name can be used as a preset key in URLs.
func ValidPresetName(name string) bool {
	return presetNamePattern.MatchString(name)
}
