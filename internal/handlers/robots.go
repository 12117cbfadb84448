// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

const robotsTxt = `User-agent: *
Disallow: /api/
Disallow: /en/admin
Disallow: /fr/admin
Disallow: /ar/admin
`

// Robots serves robots.txt, keeping crawlers out of the API and the
// admin panel.
func Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(robotsTxt))
}
