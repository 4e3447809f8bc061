package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/open-notebook/open-notebook-web/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{DB: config.DB{
		Host:     "db",
		Port:     3306,
		User:     "notebook",
		Password: "secret",
		Name:     "notebook",
		Extras:   "parseTime=true",
	}}
}

func TestCreate(t *testing.T) {
	assert.Equal(t, "notebook:secret@tcp(db:3306)/notebook?parseTime=true", Create(testConfig()))
}

func TestCreatePostgres(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Port = 5432
	cfg.DB.Extras = "sslmode=disable"

	assert.Equal(t, "host=db port=5432 user=notebook password=secret dbname=notebook sslmode=disable", CreatePostgres(cfg))

	cfg.DB.Extras = ""
	assert.Equal(t, "host=db port=5432 user=notebook password=secret dbname=notebook", CreatePostgres(cfg))
}
