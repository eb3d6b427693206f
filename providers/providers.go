// Package providers holds the static service-provider directory bundled with
// the client. It is read-only compiled-in data: nothing here is persisted or
// mutated, and the listing view merges it with the live application feed.
package providers

// Provider is one entry of the bundled directory.
type Provider struct {
	Name    string
	Service string
	Rating  float64
	Review  string
	Image   string
}

// Services is the filterable category list shown in the directory dropdown.
// FilterAll selects every category.
const FilterAll = "All"

var Services = []string{
	"Plumbing",
	"Carpentry",
	"Electrical Services",
	"Landscaping",
	"Pest Control",
	"Appliance Repair",
	"AC Services",
	"Roofing",
}

// directory is the bundled provider data.
var directory = []Provider{
	{Name: "Ravi Kumar", Service: "Plumbing", Rating: 4.5, Review: "Fixed a burst pipe within the hour. Tidy and professional.", Image: "assets/providers/ravi.jpg"},
	{Name: "Anita Desai", Service: "Electrical Services", Rating: 4.8, Review: "Rewired the whole kitchen safely and explained everything.", Image: "assets/providers/anita.jpg"},
	{Name: "Joseph Mathew", Service: "Carpentry", Rating: 4.2, Review: "Built custom shelving that fits perfectly. Great finish.", Image: "assets/providers/joseph.jpg"},
	{Name: "Lakshmi Nair", Service: "AC Services", Rating: 4.6, Review: "Serviced two units quickly, cooling works like new.", Image: "assets/providers/lakshmi.jpg"},
	{Name: "Daniel Fernandes", Service: "Pest Control", Rating: 4.1, Review: "Thorough treatment and honest about what was needed.", Image: "assets/providers/daniel.jpg"},
	{Name: "Meera Pillai", Service: "Landscaping", Rating: 4.7, Review: "Transformed the backyard. Reliable week after week.", Image: "assets/providers/meera.jpg"},
	{Name: "Arjun Shetty", Service: "Appliance Repair", Rating: 4.3, Review: "Diagnosed the washing machine fault in minutes.", Image: "assets/providers/arjun.jpg"},
	{Name: "Thomas George", Service: "Roofing", Rating: 4.4, Review: "Patched the leak before the rains. Fair price.", Image: "assets/providers/thomas.jpg"},
	{Name: "Sunita Rao", Service: "Plumbing", Rating: 4.0, Review: "Punctual and got the bathroom fittings done right.", Image: "assets/providers/sunita.jpg"},
	{Name: "Imran Khan", Service: "Electrical Services", Rating: 4.5, Review: "Installed ceiling fans and fixed flickering lights.", Image: "assets/providers/imran.jpg"},
}

// Directory returns the full bundled provider list.
func Directory() []Provider {
	out := make([]Provider, len(directory))
	copy(out, directory)
	return out
}

// FilterByService returns providers offering the given service; FilterAll
// returns everything.
func FilterByService(service string) []Provider {
	if service == FilterAll {
		return Directory()
	}
	out := make([]Provider, 0)
	for _, p := range directory {
		if p.Service == service {
			out = append(out, p)
		}
	}
	return out
}
