package main

import "github.com/gin-gonic/gin"

type App struct {
	engine *gin.Engine
}
