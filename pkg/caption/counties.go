package caption

import "strings"

// CaliforniaCounties lists the 58 California counties accepted in the
// caption's superior-court designation.
var CaliforniaCounties = []string{
	"Alameda", "Alpine", "Amador", "Butte", "Calaveras", "Colusa",
	"Contra Costa", "Del Norte", "El Dorado", "Fresno", "Glenn",
	"Humboldt", "Imperial", "Inyo", "Kern", "Kings", "Lake", "Lassen",
	"Los Angeles", "Madera", "Marin", "Mariposa", "Mendocino", "Merced",
	"Modoc", "Mono", "Monterey", "Napa", "Nevada", "Orange", "Placer",
	"Plumas", "Riverside", "Sacramento", "San Benito", "San Bernardino",
	"San Diego", "San Francisco", "San Joaquin", "San Luis Obispo",
	"San Mateo", "Santa Barbara", "Santa Clara", "Santa Cruz", "Shasta",
	"Sierra", "Siskiyou", "Solano", "Sonoma", "Stanislaus", "Sutter",
	"Tehama", "Trinity", "Tulare", "Tuolumne", "Ventura", "Yolo", "Yuba",
}

// IsCaliforniaCounty reports whether name is a California county,
// case-insensitively.
func IsCaliforniaCounty(name string) bool {
	for _, county := range CaliforniaCounties {
		if strings.EqualFold(county, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}
