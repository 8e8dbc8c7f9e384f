// Package models contains the GORM database models and their mapping to domain entities.
// Domain packages stay free of persistence tags.
package models
