package banner

import "fmt"

const banner = `
 █████╗ ██╗     █████╗ ████████╗██╗      █████╗ ███████╗
██╔══██╗██║    ██╔══██╗╚══██╔══╝██║     ██╔══██╗██╔════╝
███████║██║    ███████║   ██║   ██║     ███████║███████╗
██╔══██║██║    ██╔══██║   ██║   ██║     ██╔══██║╚════██║
██║  ██║██║    ██║  ██║   ██║   ███████╗██║  ██║███████║
╚═╝  ╚═╝╚═╝    ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚═╝  ╚═╝╚══════╝
`

// Print writes the startup banner and effective runtime info to stdout.
func Print(addr, dbPath, sources, version string, aiEnabled bool) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", addr)
	fmt.Printf("DB Path:  %s\n", dbPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	if sources != "" {
		fmt.Printf("Config sources: %s\n", sources)
	}
	fmt.Printf("Enrichment: %v\n", aiEnabled)
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("GET  /health          - liveness")
	fmt.Println("POST /auth/login      - admin login ({password} -> {token})")
	fmt.Println("GET  /events/public   - published timeline events")
	fmt.Println("GET  /roadmaps        - technology roadmaps")
	fmt.Println("GET  /news/latest     - latest collected AI news")
	fmt.Println("POST /news/collect    - trigger the collection pipeline (admin)")
	fmt.Println("GET  /news/script     - narration script from the latest news")
	fmt.Println("GET  /metrics         - prometheus metrics")
	fmt.Println("GET  /docs/           - API docs")
}
