package models

import "time"

type ArticleKind string

const (
	KindArticle ArticleKind = "article"
	KindProject ArticleKind = "project"
)

func (k ArticleKind) Valid() bool {
	return k == KindArticle || k == KindProject
}

// Article covers both blog posts and portfolio projects.
type Article struct {
	Owned
	Title         string      `gorm:"not null"`
	Slug          string      `gorm:"not null;uniqueIndex"`
	Kind          ArticleKind `gorm:"type:varchar(16);index;not null;default:'article'"`
	Summary       string      `gorm:"type:text"`
	Content       string      `gorm:"type:text"`
	ContentHTML   string      `gorm:"type:text"`
	CoverImageURL string
	ProjectURL    string
	RepoURL       string
	Tags          []string `gorm:"type:text;serializer:json"`
	Published     bool     `gorm:"index"`
	PublishedAt   *time.Time
}
