package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Pascual-Eburi/employee-directory/internal/config"
	appHTTP "github.com/Pascual-Eburi/employee-directory/internal/handler/http"
	"github.com/Pascual-Eburi/employee-directory/internal/pkg/database"
	"github.com/Pascual-Eburi/employee-directory/internal/pkg/storage"
	"github.com/Pascual-Eburi/employee-directory/internal/repository/postgresql"
	employeeService "github.com/Pascual-Eburi/employee-directory/internal/service/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/service/file"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	fileService := file.NewFileService(fileStorage)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(employeeHandler, cfg.Storage.BasePath)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
