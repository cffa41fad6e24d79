package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/innohub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestDialector(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "3306",
		DBDatabase: "innohub",
		DBUser:     "app",
		DBPassword: "s3cret",
	}

	for _, tt := range []struct{ dbType, name string }{
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"postgres", "postgres"},
		{"sqlserver", "sqlserver"},
		{"sqlite", "sqlite"},
	} {
		t.Run(tt.dbType, func(t *testing.T) {
			c := *cfg
			c.DBType = tt.dbType
			d, err := Dialector(&c)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	c := *cfg
	c.DBType = "mysql"
	d, err := Dialector(&c)
	require.NoError(t, err)
	dsn := d.(*mysql.Dialector).Config.DSN
	assert.Contains(t, dsn, "app:s3cret@tcp(db:3306)/innohub")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	c.DBType = "oracle"
	_, err = Dialector(&c)
	assert.Error(t, err)
}

func TestAutoMigrateAndClose(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite", DBDatabase: filepath.Join(t.TempDir(), "innohub.db"), DBConnectionLimit: 2, LogLevel: "error"}
	db, err := Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"users", "startups", "filings", "messages", "uploads"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, Close(db))
}
