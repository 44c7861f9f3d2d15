package geo

var stateTable = []State{
	{Name: "alabama", Code: "AL"},
	{Name: "alaska", Code: "AK"},
	{Name: "arizona", Code: "AZ"},
	{Name: "arkansas", Code: "AR"},
	{Name: "california", Code: "CA"},
	{Name: "colorado", Code: "CO"},
	{Name: "connecticut", Code: "CT"},
	{Name: "delaware", Code: "DE"},
	{Name: "florida", Code: "FL"},
	{Name: "georgia", Code: "GA"},
	{Name: "hawaii", Code: "HI"},
	{Name: "idaho", Code: "ID"},
	{Name: "illinois", Code: "IL"},
	{Name: "indiana", Code: "IN"},
	{Name: "iowa", Code: "IA"},
	{Name: "kansas", Code: "KS"},
	{Name: "kentucky", Code: "KY"},
	{Name: "louisiana", Code: "LA"},
	{Name: "maine", Code: "ME"},
	{Name: "maryland", Code: "MD"},
	{Name: "massachusetts", Code: "MA"},
	{Name: "michigan", Code: "MI"},
	{Name: "minnesota", Code: "MN"},
	{Name: "mississippi", Code: "MS"},
	{Name: "missouri", Code: "MO"},
	{Name: "montana", Code: "MT"},
	{Name: "nebraska", Code: "NE"},
	{Name: "nevada", Code: "NV"},
	{Name: "new hampshire", Code: "NH"},
	{Name: "new jersey", Code: "NJ"},
	{Name: "new mexico", Code: "NM"},
	{Name: "new york", Code: "NY"},
	{Name: "north carolina", Code: "NC"},
	{Name: "north dakota", Code: "ND"},
	{Name: "ohio", Code: "OH"},
	{Name: "oklahoma", Code: "OK"},
	{Name: "oregon", Code: "OR"},
	{Name: "pennsylvania", Code: "PA"},
	{Name: "rhode island", Code: "RI"},
	{Name: "south carolina", Code: "SC"},
	{Name: "south dakota", Code: "SD"},
	{Name: "tennessee", Code: "TN"},
	{Name: "texas", Code: "TX"},
	{Name: "utah", Code: "UT"},
	{Name: "vermont", Code: "VT"},
	{Name: "virginia", Code: "VA"},
	{Name: "washington", Code: "WA"},
	{Name: "west virginia", Code: "WV"},
	{Name: "wisconsin", Code: "WI"},
	{Name: "wyoming", Code: "WY"},
	{Name: "district of columbia", Code: "DC"},
}
