package catalog

import (
	"fmt"
	"time"

	"cmdfolder/model"
)

type seedCategory struct {
	id       string
	name     string
	commands [][2]string // text, description
}

var seed = []seedCategory{
	{"docker", "Docker", [][2]string{
		{"docker ps", "List running containers"},
		{"docker ps -a", "List all containers (including stopped)"},
		{"docker images", "List all Docker images"},
		{"docker run -it --rm ubuntu:latest", "Run an interactive Ubuntu container"},
		{"docker-compose up -d", "Start services defined in docker-compose.yml"},
	}},
	{"git", "Git", [][2]string{
		{"git status", "Check git repository status"},
		{"git log --oneline", "Show commit history in a compact format"},
		{"git add .", "Stage all changes for commit"},
		{`git commit -m "Commit message"`, "Commit staged changes with a message"},
		{"git pull origin main", "Pull latest changes from main branch"},
		{"git push origin feature-branch", "Push changes to a feature branch"},
	}},
	{"nginx", "Nginx", [][2]string{
		{"sudo systemctl start nginx", "Start Nginx service"},
		{"sudo systemctl stop nginx", "Stop Nginx service"},
		{"sudo systemctl restart nginx", "Restart Nginx service"},
		{"sudo systemctl reload nginx", "Reload Nginx configuration without restarting"},
		{"sudo nginx -t", "Test Nginx configuration for syntax errors"},
	}},
	{"k8s", "Kubernetes", [][2]string{
		{"kubectl get pods", "List all pods in the current namespace"},
		{"kubectl get pods -A", "List all pods in all namespaces"},
		{"kubectl get deployments", "List all deployments"},
		{"kubectl get services", "List all services"},
		{"kubectl describe pod <pod-name>", "Show detailed information about a pod"},
		{"kubectl logs <pod-name>", "Show logs from a pod"},
	}},
	{"linux", "Linux", [][2]string{
		{"ls -la", "List all files and directories (including hidden)"},
		{"cd <directory>", "Change current directory"},
		{"pwd", "Print current working directory"},
		{`grep -r "search-term" <directory>`, "Search for a term recursively in a directory"},
		{"ps aux", "List all running processes"},
		{"top", "Display real-time system resource usage"},
	}},
	{"mysql", "MySQL", [][2]string{
		{"mysql -u <username> -p", "Connect to MySQL server"},
		{"show databases;", "List all databases"},
		{"use <database>;", "Select a database to use"},
		{"show tables;", "List all tables in current database"},
		{"select * from <table>;", "Select all records from a table"},
		{"mysqldump -u <username> -p <database> > backup.sql", "Backup a database to SQL file"},
	}},
}

// DefaultDocument returns the first-run dataset: six categories and their
// commands, all stamped with now. Ids are fixed ("category_docker",
// "command_docker_1", ...).
func DefaultDocument(now time.Time) model.Document {
	var doc model.Document
	for _, c := range seed {
		catID := "category_" + c.id
		doc.Categories = append(doc.Categories, model.Category{
			ID:        catID,
			Name:      c.name,
			CreatedAt: now,
		})
		for i, cmd := range c.commands {
			doc.Commands = append(doc.Commands, model.Command{
				ID:          fmt.Sprintf("command_%s_%d", c.id, i+1),
				Text:        cmd[0],
				Description: cmd[1],
				CategoryID:  catID,
				CreatedAt:   now,
			})
		}
	}
	return doc
}
