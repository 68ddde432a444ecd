package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/filesystem"
	"github.com/tinct-ui/tinct/key"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			// After setup, viper should have defaults from Default map
			for name, field := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
				_ = field // just ensuring iteration works
			}
		})

		Convey("Should register every declared key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("styles.default_theme")
			So(result, ShouldEqual, "styles_default_theme")
		})

		Convey("Env should carry the application prefix", func() {
			field := Default[key.CacheMaxSize]
			So(field.Env(), ShouldEqual, "TINCT_CACHE_MAX_SIZE")
		})
	})
}
