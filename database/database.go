package database

import (
	"gorm.io/gorm"
)

type Database struct {
	db            *gorm.DB
	postRepo      *PostRepo
	tagRepo       *TagRepo
	postTagRepo   *PostTagRepo
	commentRepo   *CommentRepo
	userRepo      *UserRepo
	dailyStatRepo *DailyStatRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		postRepo:      NewPostRepo(db),
		tagRepo:       NewTagRepo(db),
		postTagRepo:   NewPostTagRepo(db),
		commentRepo:   NewCommentRepo(db),
		userRepo:      NewUserRepo(db),
		dailyStatRepo: NewDailyStatRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) PostTagRepo() *PostTagRepo {
	return d.postTagRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) DailyStatRepo() *DailyStatRepo {
	return d.dailyStatRepo
}

// Transaction runs fn inside one database transaction. Every public
// engine operation goes through here so a failure rolls the whole
// operation back.
func (d Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.db.Transaction(fn)
}

// Conn exposes the shared connection for migration and tooling paths.
func (d Database) Conn() *gorm.DB {
	return d.db
}
