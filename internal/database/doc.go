// Package database provides the durable storage behind user data.
//
// Everything the application persists lives in a single SQLite table of
// key/value rows (entities.Setting). Each user-data collection (favourites,
// notes, highlights, reader settings) is one row holding serialized JSON and
// is rewritten in full on every change.
//
//	database/
//	├── database.go      # Connection setup, migrations, raw setting access
//	└── settings/        # Key/value repository used as the annotations gateway
//
// # Usage
//
//	db, err := database.NewDatabase("./lectio.db", logger.Warn)
//	repo := settings.NewRepository(db.DB)
//	store, err := annotations.NewStore(repo)
package database
