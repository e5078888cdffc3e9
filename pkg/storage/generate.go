package storage

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_catalog.go github.com/kasuboski/pager/pkg/storage Catalog
