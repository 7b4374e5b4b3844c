package material

import "errors"

var (
	// ErrMaterialNotFound возвращается, когда материал не найден
	ErrMaterialNotFound = errors.New("material.repository: material not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("material.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("material.repository: failed to execute query")
)
