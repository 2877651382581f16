// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Biologist is the predicate function for biologist builders.
type Biologist func(*sql.Selector)

// BloodBag is the predicate function for bloodbag builders.
type BloodBag func(*sql.Selector)

// ChefService is the predicate function for chefservice builders.
type ChefService func(*sql.Selector)

// Component is the predicate function for component builders.
type Component func(*sql.Selector)

// Distribution is the predicate function for distribution builders.
type Distribution func(*sql.Selector)

// YearlyStat is the predicate function for yearlystat builders.
type YearlyStat func(*sql.Selector)
