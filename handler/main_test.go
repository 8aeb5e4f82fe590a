// handler/main_test.go
package handler

import (
	"food-storefront/config"
	"food-storefront/logger"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.SetLevel("error")
	config.AppConfig.JWT.SecretKey = "handler-test-secret"
	config.AppConfig.JWT.AccessTokenTTL = time.Minute
	config.AppConfig.Upload.MaxImageBytes = 1 << 20
	os.Exit(m.Run())
}
