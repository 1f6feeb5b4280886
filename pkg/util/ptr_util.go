package util

import (
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
)

func Ptr[V string | bool | int | model.DateTime | model.DeliveryMode](s V) *V {
	return &s
}
