//cmd/seeder/main.go
package main

import (
    "fmt"
    "log"
    "os"

    "github.com/unclebandit/campaign-planner/internal/config"
    "github.com/unclebandit/campaign-planner/internal/db"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Fatal(err)
    }

    db.Init(cfg)
    defer db.DB.Close()

    seedFiles := []string{
        "seed/schema.sql",
    }

    for _, file := range seedFiles {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        _, err = db.DB.Exec(string(content))
        if err != nil {
            log.Fatalf("failed to execute %s: %v", file, err)
        }
        fmt.Printf("Seeded: %s\n", file)
    }

    fmt.Println("Database seeding completed successfully!")
}
