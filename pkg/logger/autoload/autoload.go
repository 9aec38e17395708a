// Package autoload initializes the global logger from the LOG-prefixed
// environment on import:
//
//	import _ "github.com/Eva-Financial-Ai/Eva-Rag-sub003/pkg/logger/autoload"
package autoload

import (
	configx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/pkg/config"
	logx "github.com/Eva-Financial-Ai/Eva-Rag-sub003/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}
