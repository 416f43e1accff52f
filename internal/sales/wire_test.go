package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/internal/config"
	"salesdash/internal/sales/repository"
)

func TestNewDatasetSource(t *testing.T) {
	src, err := NewDatasetSource(config.DatasetConfig{Source: config.DatasetSourceFile}, nil)
	require.NoError(t, err)
	assert.IsType(t, &repository.FileRepository{}, src)

	_, err = NewDatasetSource(config.DatasetConfig{Source: config.DatasetSourceMySQL}, nil)
	assert.Error(t, err)

	_, err = NewDatasetSource(config.DatasetConfig{Source: "s3"}, nil)
	assert.EqualError(t, err, `unknown dataset source "s3"`)
}
