// README: Metro station coverage lookup keyed by city.
package provider

import "strings"

// metroStations maps a city to the station keywords users commonly type.
// A route counts as covered only when origin and destination both match
// stations of the same city.
var metroStations = map[string][]string{
	"delhi-ncr": {
		"rajiv chowk", "kashmere gate", "new delhi", "delhi",
		"aiims", "hauz khas", "green park",
		"dilshad garden", "rohini west", "chandni chowk",
	},
	"mumbai": {
		"borivali", "kandivali", "malad",
		"andheri", "goregaon",
	},
	"bengaluru": {
		"silk board", "jayadeva", "jp nagar",
		"iim bangalore", "hulimavu", "hebbagodi",
	},
	"kolkata": {
		"esplanade", "howrah", "dum dum", "tollygunge",
	},
	"chennai": {
		"koyambedu", "cmbt", "arumbakkam",
	},
	"hyderabad": {
		"ameerpet", "begumpet", "miyapur",
	},
	"lucknow": {
		"charbagh", "hazratganj", "ccs airport",
	},
}

// MetroRouteCovered reports whether both endpoints sit on the same city's
// metro network.
func MetroRouteCovered(origin, destination string) bool {
	o := strings.ToLower(origin)
	d := strings.ToLower(destination)

	for _, stations := range metroStations {
		if containsAny(o, stations) && containsAny(d, stations) {
			return true
		}
	}
	return false
}

func containsAny(input string, stations []string) bool {
	for _, s := range stations {
		if strings.Contains(input, s) {
			return true
		}
	}
	return false
}
