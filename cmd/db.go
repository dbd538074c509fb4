package cmd

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/viper"

	"github.com/cveillard/radiant/models"
)

func openDB() (*gorm.DB, error) {
	return gorm.Open("sqlite3", viper.GetString("db"))
}

// logRun appends the run to the history database. A broken database is
// worth a warning, not a failed enhancement.
func logRun(run *models.Run) {
	db, err := openDB()
	if err != nil {
		fmt.Println("couldn't open run history:", err)
		return
	}
	defer db.Close()

	db.AutoMigrate(&models.Run{})
	if err := run.Create(db); err != nil {
		fmt.Println("couldn't record run:", err)
	}
}
