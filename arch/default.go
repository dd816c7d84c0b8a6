package arch

// Default returns the fixed reference topology: a generic cloud
// deployment with users reaching the system through a CDN, a load
// balancer and an API gateway, backed by web servers, an app server,
// a database, a cache and file storage.
//
// Box coordinates live on a 10x8 canvas, Pos coordinates on the
// interactive grid. Both are literal placements; there is no layout
// engine.
func Default() Topology {
	return Topology{
		Name: "Cloud Architecture",
		Components: []Component{
			{
				ID: "users", Label: "Users", Category: CategoryUser,
				Box: Rect{X: 1, Y: 0.2, W: 1.2, H: 0.6}, Pos: Point{X: 1, Y: 1}, Marker: 30,
				Role: "External clients accessing the system",
			},
			{
				ID: "cdn", Label: "CDN", Category: CategoryNetwork,
				Box: Rect{X: 1, Y: 2.5, W: 1.5, H: 0.6}, Pos: Point{X: 1, Y: 3}, Marker: 25,
				Role: "Content Delivery Network for static assets",
			},
			{
				ID: "load_balancer", Label: "Load Balancer", Category: CategoryNetwork,
				Box: Rect{X: 1, Y: 5.5, W: 1.5, H: 0.8}, Pos: Point{X: 2, Y: 5}, Marker: 25,
				Role: "Distributes incoming requests",
			},
			{
				ID: "web_server_1", Label: "Web Server 1", Category: CategoryWeb,
				Box: Rect{X: 3.5, Y: 6, W: 1.5, H: 0.6}, Pos: Point{X: 4, Y: 6}, Marker: 25,
				Role: "Handles HTTP requests",
			},
			{
				ID: "web_server_2", Label: "Web Server 2", Category: CategoryWeb,
				Box: Rect{X: 3.5, Y: 5, W: 1.5, H: 0.6}, Pos: Point{X: 4, Y: 4}, Marker: 25,
				Role: "Handles HTTP requests",
			},
			{
				ID: "api_gateway", Label: "API Gateway", Category: CategoryNetwork,
				Box: Rect{X: 3.5, Y: 2, W: 1.5, H: 0.6}, Pos: Point{X: 4, Y: 2}, Marker: 25,
				Role: "API management and routing",
			},
			{
				ID: "app_server", Label: "App Server", Category: CategoryApp,
				Box: Rect{X: 6, Y: 5.5, W: 1.5, H: 0.8}, Pos: Point{X: 6, Y: 5}, Marker: 30,
				Role: "Business logic processing",
			},
			{
				ID: "database", Label: "Database", Category: CategoryDB,
				Box: Rect{X: 8, Y: 6, W: 1.2, H: 0.6}, Pos: Point{X: 8, Y: 6}, Marker: 30,
				Role: "Persistent data storage",
			},
			{
				ID: "cache", Label: "Redis Cache", Category: CategoryCache,
				Box: Rect{X: 8, Y: 4.5, W: 1.2, H: 0.6}, Pos: Point{X: 8, Y: 4}, Marker: 25,
				Role: "Redis for fast data retrieval",
			},
			{
				ID: "storage", Label: "File Storage", Category: CategoryStorage,
				Box: Rect{X: 6, Y: 3, W: 1.5, H: 0.8}, Pos: Point{X: 6, Y: 2}, Marker: 25,
				Role: "File storage system",
			},
		},
		Connections: []Connection{
			{From: "users", To: "cdn"},
			{From: "users", To: "load_balancer"},
			{From: "users", To: "api_gateway"},
			{From: "cdn", To: "load_balancer"},
			{From: "load_balancer", To: "web_server_1"},
			{From: "load_balancer", To: "web_server_2"},
			{From: "web_server_1", To: "app_server"},
			{From: "web_server_2", To: "app_server"},
			{From: "app_server", To: "database"},
			{From: "app_server", To: "cache"},
			{From: "app_server", To: "storage"},
			{From: "api_gateway", To: "storage"},
			{From: "api_gateway", To: "app_server"},
		},
	}
}
