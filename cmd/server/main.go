package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/cmd/server/bootstrap"

	"github.com/spf13/viper"
)

func main() {
	bootstrap.InitViper()
	bootstrap.InitValidate()
	tpCancel := bootstrap.InitOTEL()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tpCancel(ctx)
	}()

	app := InitApp()

	// 初始化 HTTP Server
	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 1. 在 goroutine 中启动服务器
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	// 2. 监听中断信号，kill -9 捕获不到
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 阻塞直到接收到信号
	<-quit
	println("Shutting down server...")

	// 3. 创建一个 5 秒超时的 Context，给正在处理的请求一点时间收尾
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		println("Server forced to shutdown:", err.Error())
	}

	println("Server exiting")
}
