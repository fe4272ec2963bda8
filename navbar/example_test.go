package navbar_test

import (
	"fmt"
	"net/http/httptest"

	"github.com/rs/zerolog"

	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

func ExampleRenderer_Render() {
	nav := navbar.New(navbar.WithLogger(zerolog.Nop()))
	nav.SetBrand("Acme", "/", "")
	nav.AddMenuItem("Home", "/")
	nav.SetActivePath("/")

	fmt.Println(nav.Render())
	// Output:
	// <nav class="navbar navbar-expand-lg navbar-light bg-light">
	// <div class="container-fluid">
	// <a class="navbar-brand" href="/">Acme</a>
	// <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#navbarContent" aria-controls="navbarContent" aria-expanded="false" aria-label="Toggle navigation">
	// <span class="navbar-toggler-icon"></span>
	// </button>
	// <div class="collapse navbar-collapse" id="navbarContent">
	// <ul class="navbar-nav me-auto mb-2 mb-lg-0">
	// <li class="nav-item">
	// <a class="nav-link active" href="/" aria-current="page">Home</a>
	// </li>
	// </ul>
	// </div>
	// </div>
	// </nav>
}

func ExampleWithPathProvider() {
	req := httptest.NewRequest("GET", "/docs/intro", nil)

	nav := navbar.New(
		navbar.WithLogger(zerolog.Nop()),
		navbar.WithPathProvider(navbar.RequestPath(req)),
	)

	fmt.Println(nav.IsActive("/docs"), nav.IsActive("/"))
	// Output: true false
}
