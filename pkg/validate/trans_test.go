package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveTopStruct(t *testing.T) {
	res := RemoveTopStruct(map[string]string{
		"AvatarMetaReq.mimeType": "mimeType为必填字段",
		"fileSize":               "fileSize必须大于0",
	})
	assert.Equal(t, map[string]string{
		"mimeType": "mimeType为必填字段",
		"fileSize": "fileSize必须大于0",
	}, res)
}
