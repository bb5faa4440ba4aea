package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name          string        `json:"name" binding:"required"`
	Slug          string        `gorm:"uniqueIndex;size:200" json:"slug"`
	Image         string        `json:"image"`
	Subcategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
}

type SubCategory struct {
	gorm.Model
	CategoryID int    `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Slug       string `gorm:"uniqueIndex;size:200" json:"slug"`
	Image      string `json:"image"`
}
