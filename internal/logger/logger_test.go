package logger

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContextReadsGinKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)
	c.Set("username", "usta")
	c.Set("tenant_id", int64(12345678))
	c.Set("request_id", "req-1")

	log := WithContext(c)

	assert.Equal(t, "usta", log.Data["user"])
	assert.Equal(t, int64(12345678), log.Data["tenant_id"])
	assert.Equal(t, "req-1", log.Data["request_id"])
}

func TestWithContextAnonymous(t *testing.T) {
	log := WithContext(context.Background())

	assert.Equal(t, "anonymous", log.Data["user"])
	_, hasTenant := log.Data["tenant_id"]
	assert.False(t, hasTenant)
}

func TestWithFieldsChain(t *testing.T) {
	log := New().WithField("component", "webhook").WithFields(map[string]interface{}{"event": "card.created"})

	assert.Equal(t, "webhook", log.Data["component"])
	assert.Equal(t, "card.created", log.Data["event"])
}

func TestSetupLevels(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
