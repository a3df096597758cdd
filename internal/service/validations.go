package service

import (
	"net/url"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("page_url", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			// Absolute http(s) URL with a host
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		})
		validate.RegisterValidation("app_path", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			// Either a path inside the application or an absolute http(s) URL
			if u.Scheme == "" && u.Host == "" {
				return u.Path != ""
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		})
	})
}
