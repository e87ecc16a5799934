package planner

import (
	"sort"
	"strings"
)

var popularPlaces = map[string][]string{
	"Delhi":     {"Red Fort", "Qutub Minar", "India Gate", "Lotus Temple", "Akshardham Temple", "Humayun's Tomb"},
	"Mumbai":    {"Gateway of India", "Marine Drive", "Elephanta Caves", "Juhu Beach", "Sanjay Gandhi National Park"},
	"Bangalore": {"Cubbon Park", "Lalbagh", "Bangalore Palace", "Nandi Hills", "Bannerghatta National Park"},
	"Goa":       {"Baga Beach", "Calangute Beach", "Fort Aguada", "Basilica of Bom Jesus", "Dudhsagar Falls"},
	"Kerala":    {"Alleppey Backwaters", "Munnar", "Wayanad", "Kovalam Beach", "Thekkady"},
	"Jaipur":    {"Amber Fort", "Hawa Mahal", "City Palace", "Jantar Mantar", "Albert Hall Museum"},
}

var knownDestinations = []string{
	"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Ahmedabad",
	"Jaipur", "Lucknow", "Goa", "Kochi", "Agra", "Varanasi", "Shimla", "Rishikesh",
	"Darjeeling", "Udaipur", "Amritsar", "Mysore", "Pondicherry", "Ooty", "Manali",
	"Munnar", "Pune", "Leh", "Srinagar", "Andaman & Nicobar Islands", "Kerala", "Jodhpur",
}

// Destinations lists destinations the planner knows by name, sorted
func Destinations() []string {
	out := append([]string(nil), knownDestinations...)
	sort.Strings(out)
	return out
}

// SuggestPlaces returns popular places for a destination (case-insensitive), or an empty list
func SuggestPlaces(destination string) []string {
	destination = strings.TrimSpace(destination)
	for name, places := range popularPlaces {
		if strings.EqualFold(name, destination) {
			return append([]string(nil), places...)
		}
	}
	return []string{}
}
