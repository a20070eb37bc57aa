package startup

import (
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	rootDSN = "root:root@tcp(localhost:13316)/mysql?charset=utf8mb4&parseTime=True&loc=Local"
	testDSN = "root:root@tcp(localhost:13316)/deepfake_integration_test?charset=utf8mb4&parseTime=True&loc=Local"
)

func InitMySQL() *gorm.DB {
	// 先连默认的 mysql 库，建一个单独的测试库，防止污染现有库
	db, err := gorm.Open(mysql.Open(rootDSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	err = db.Exec("CREATE DATABASE IF NOT EXISTS deepfake_integration_test").Error
	if err != nil {
		panic(err)
	}

	db, err = gorm.Open(mysql.Open(testDSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err = dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
