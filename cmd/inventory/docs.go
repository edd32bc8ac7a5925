package main

// @title Inventory REST API Service
// @version 1.0
// @description REST service managing inventory records with field filtering and restock actions

// @contact.name API Support
// @contact.url http://github.com/king0ffire/inventory-service

// @license.name MIT
// @license.url https://github.com/king0ffire/inventory-service/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Inventory
// @tag.description Inventory management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
