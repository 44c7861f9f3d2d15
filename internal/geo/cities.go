package geo

// cityTable is ported tracking data: entry order is load-bearing for the
// classifier substring scan and must not be re-sorted.
var cityTable = []City{
	{Key: "new york", Name: "New York", State: "NY", Lat: 40.7128, Lng: -74.0060},
	{Key: "los angeles", Name: "Los Angeles", State: "CA", Lat: 34.0522, Lng: -118.2437},
	{Key: "chicago", Name: "Chicago", State: "IL", Lat: 41.8781, Lng: -87.6298},
	{Key: "houston", Name: "Houston", State: "TX", Lat: 29.7604, Lng: -95.3698},
	{Key: "phoenix", Name: "Phoenix", State: "AZ", Lat: 33.4484, Lng: -112.0740},
	{Key: "philadelphia", Name: "Philadelphia", State: "PA", Lat: 39.9526, Lng: -75.1652},
	{Key: "san antonio", Name: "San Antonio", State: "TX", Lat: 29.4241, Lng: -98.4936},
	{Key: "san diego", Name: "San Diego", State: "CA", Lat: 32.7157, Lng: -117.1611},
	{Key: "dallas", Name: "Dallas", State: "TX", Lat: 32.7767, Lng: -96.7970},
	{Key: "san jose", Name: "San Jose", State: "CA", Lat: 37.3382, Lng: -121.8863},
	{Key: "austin", Name: "Austin", State: "TX", Lat: 30.2672, Lng: -97.7431},
	{Key: "jacksonville", Name: "Jacksonville", State: "FL", Lat: 30.3322, Lng: -81.6557},
	{Key: "fort worth", Name: "Fort Worth", State: "TX", Lat: 32.7555, Lng: -97.3308},
	{Key: "columbus", Name: "Columbus", State: "OH", Lat: 39.9612, Lng: -82.9988},
	{Key: "charlotte", Name: "Charlotte", State: "NC", Lat: 35.2271, Lng: -80.8431},
	{Key: "san francisco", Name: "San Francisco", State: "CA", Lat: 37.7749, Lng: -122.4194},
	{Key: "indianapolis", Name: "Indianapolis", State: "IN", Lat: 39.7684, Lng: -86.1581},
	{Key: "seattle", Name: "Seattle", State: "WA", Lat: 47.6062, Lng: -122.3321},
	{Key: "denver", Name: "Denver", State: "CO", Lat: 39.7392, Lng: -104.9903},
	{Key: "boston", Name: "Boston", State: "MA", Lat: 42.3601, Lng: -71.0589},
	{Key: "el paso", Name: "El Paso", State: "TX", Lat: 31.7619, Lng: -106.4850},
	{Key: "nashville", Name: "Nashville", State: "TN", Lat: 36.1627, Lng: -86.7816},
	{Key: "detroit", Name: "Detroit", State: "MI", Lat: 42.3314, Lng: -83.0458},
	{Key: "portland", Name: "Portland", State: "OR", Lat: 45.5152, Lng: -122.6784},
	{Key: "memphis", Name: "Memphis", State: "TN", Lat: 35.1495, Lng: -90.0490},
	{Key: "oklahoma city", Name: "Oklahoma City", State: "OK", Lat: 35.4676, Lng: -97.5164},
	{Key: "las vegas", Name: "Las Vegas", State: "NV", Lat: 36.1699, Lng: -115.1398},
	{Key: "louisville", Name: "Louisville", State: "KY", Lat: 38.2527, Lng: -85.7585},
	{Key: "baltimore", Name: "Baltimore", State: "MD", Lat: 39.2904, Lng: -76.6122},
	{Key: "milwaukee", Name: "Milwaukee", State: "WI", Lat: 43.0389, Lng: -87.9065},
	{Key: "albuquerque", Name: "Albuquerque", State: "NM", Lat: 35.0844, Lng: -106.6504},
	{Key: "tucson", Name: "Tucson", State: "AZ", Lat: 32.2226, Lng: -110.9747},
	{Key: "fresno", Name: "Fresno", State: "CA", Lat: 36.7378, Lng: -119.7871},
	{Key: "sacramento", Name: "Sacramento", State: "CA", Lat: 38.5816, Lng: -121.4944},
	{Key: "atlanta", Name: "Atlanta", State: "GA", Lat: 33.7490, Lng: -84.3880},
	{Key: "miami", Name: "Miami", State: "FL", Lat: 25.7617, Lng: -80.1918},
	{Key: "minneapolis", Name: "Minneapolis", State: "MN", Lat: 44.9778, Lng: -93.2650},
	{Key: "cleveland", Name: "Cleveland", State: "OH", Lat: 41.4993, Lng: -81.6944},
	{Key: "tampa", Name: "Tampa", State: "FL", Lat: 27.9506, Lng: -82.4572},
	{Key: "st. louis", Name: "St. Louis", State: "MO", Lat: 38.6270, Lng: -90.1994},
	{Key: "pittsburgh", Name: "Pittsburgh", State: "PA", Lat: 40.4406, Lng: -79.9959},
	{Key: "cincinnati", Name: "Cincinnati", State: "OH", Lat: 39.1031, Lng: -84.5120},
	{Key: "raleigh", Name: "Raleigh", State: "NC", Lat: 35.7796, Lng: -78.6382},
	{Key: "newark", Name: "Newark", State: "NJ", Lat: 40.7357, Lng: -74.1724},
	{Key: "aurora", Name: "Aurora", State: "CO", Lat: 39.7294, Lng: -104.8319},
	{Key: "orlando", Name: "Orlando", State: "FL", Lat: 28.5383, Lng: -81.3792},
	{Key: "new orleans", Name: "New Orleans", State: "LA", Lat: 29.9511, Lng: -90.0715},
	{Key: "bakersfield", Name: "Bakersfield", State: "CA", Lat: 35.3733, Lng: -119.0187},
	{Key: "riverside", Name: "Riverside", State: "CA", Lat: 33.9533, Lng: -117.3962},
	{Key: "stockton", Name: "Stockton", State: "CA", Lat: 37.9577, Lng: -121.2908},
	{Key: "corpus christi", Name: "Corpus Christi", State: "TX", Lat: 27.8006, Lng: -97.3964},
	{Key: "irvine", Name: "Irvine", State: "CA", Lat: 33.6846, Lng: -117.8265},
	{Key: "anaheim", Name: "Anaheim", State: "CA", Lat: 33.8366, Lng: -117.9143},
	{Key: "santa ana", Name: "Santa Ana", State: "CA", Lat: 33.7455, Lng: -117.8677},
	{Key: "henderson", Name: "Henderson", State: "NV", Lat: 36.0395, Lng: -114.9817},
	{Key: "greensboro", Name: "Greensboro", State: "NC", Lat: 36.0726, Lng: -79.7920},
	{Key: "plano", Name: "Plano", State: "TX", Lat: 33.0198, Lng: -96.6989},
	{Key: "lincoln", Name: "Lincoln", State: "NE", Lat: 40.8258, Lng: -96.6852},
	{Key: "buffalo", Name: "Buffalo", State: "NY", Lat: 42.8864, Lng: -78.8784},
	{Key: "jersey city", Name: "Jersey City", State: "NJ", Lat: 40.7178, Lng: -74.0431},
	{Key: "chandler", Name: "Chandler", State: "AZ", Lat: 33.3062, Lng: -111.8413},
	{Key: "st. paul", Name: "St. Paul", State: "MN", Lat: 44.9537, Lng: -93.0900},
	{Key: "norfolk", Name: "Norfolk", State: "VA", Lat: 36.8508, Lng: -76.2859},
	{Key: "laredo", Name: "Laredo", State: "TX", Lat: 27.5306, Lng: -99.4803},
	{Key: "madison", Name: "Madison", State: "WI", Lat: 43.0731, Lng: -89.4012},
	{Key: "durham", Name: "Durham", State: "NC", Lat: 35.9940, Lng: -78.8986},
	{Key: "lubbock", Name: "Lubbock", State: "TX", Lat: 33.5779, Lng: -101.8552},
	{Key: "garland", Name: "Garland", State: "TX", Lat: 32.9126, Lng: -96.6389},
	{Key: "glendale", Name: "Glendale", State: "AZ", Lat: 33.5387, Lng: -112.1860},
	{Key: "hialeah", Name: "Hialeah", State: "FL", Lat: 25.8576, Lng: -80.2781},
	{Key: "reno", Name: "Reno", State: "NV", Lat: 39.5296, Lng: -119.8138},
	{Key: "chesapeake", Name: "Chesapeake", State: "VA", Lat: 36.7682, Lng: -76.2875},
	{Key: "gilbert", Name: "Gilbert", State: "AZ", Lat: 33.3528, Lng: -111.7890},
	{Key: "baton rouge", Name: "Baton Rouge", State: "LA", Lat: 30.4515, Lng: -91.1871},
	{Key: "irving", Name: "Irving", State: "TX", Lat: 32.8140, Lng: -96.9489},
	{Key: "scottsdale", Name: "Scottsdale", State: "AZ", Lat: 33.4942, Lng: -111.9261},
	{Key: "north las vegas", Name: "North Las Vegas", State: "NV", Lat: 36.1989, Lng: -115.1175},
	{Key: "fremont", Name: "Fremont", State: "CA", Lat: 37.5485, Lng: -121.9886},
	{Key: "boise", Name: "Boise", State: "ID", Lat: 43.6150, Lng: -116.2023},
	{Key: "richmond", Name: "Richmond", State: "VA", Lat: 37.5407, Lng: -77.4360},
	{Key: "san bernardino", Name: "San Bernardino", State: "CA", Lat: 34.1083, Lng: -117.2898},
	{Key: "birmingham", Name: "Birmingham", State: "AL", Lat: 33.5207, Lng: -86.8025},
	{Key: "spokane", Name: "Spokane", State: "WA", Lat: 47.6588, Lng: -117.4260},
	{Key: "rochester", Name: "Rochester", State: "NY", Lat: 43.1566, Lng: -77.6088},
	{Key: "des moines", Name: "Des Moines", State: "IA", Lat: 41.5868, Lng: -93.6250},
	{Key: "modesto", Name: "Modesto", State: "CA", Lat: 37.6391, Lng: -120.9969},
	{Key: "fayetteville", Name: "Fayetteville", State: "AR", Lat: 36.0626, Lng: -94.1574},
	{Key: "tacoma", Name: "Tacoma", State: "WA", Lat: 47.2529, Lng: -122.4443},
	{Key: "oxnard", Name: "Oxnard", State: "CA", Lat: 34.1975, Lng: -119.1771},
	{Key: "fontana", Name: "Fontana", State: "CA", Lat: 34.0922, Lng: -117.4350},
	{Key: "columbus ga", Name: "Columbus Ga", State: "GA", Lat: 32.4610, Lng: -84.9877},
	{Key: "montgomery", Name: "Montgomery", State: "AL", Lat: 32.3668, Lng: -86.3000},
	{Key: "moreno valley", Name: "Moreno Valley", State: "CA", Lat: 33.9425, Lng: -117.2297},
	{Key: "shreveport", Name: "Shreveport", State: "LA", Lat: 32.5252, Lng: -93.7502},
	{Key: "aurora il", Name: "Aurora Il", State: "IL", Lat: 41.7606, Lng: -88.3201},
	{Key: "yonkers", Name: "Yonkers", State: "NY", Lat: 40.9312, Lng: -73.8987},
	{Key: "akron", Name: "Akron", State: "OH", Lat: 41.0814, Lng: -81.5190},
	{Key: "huntington beach", Name: "Huntington Beach", State: "CA", Lat: 33.6595, Lng: -117.9988},
	{Key: "little rock", Name: "Little Rock", State: "AR", Lat: 34.7465, Lng: -92.2896},
	{Key: "augusta", Name: "Augusta", State: "GA", Lat: 33.4735, Lng: -82.0105},
	{Key: "amarillo", Name: "Amarillo", State: "TX", Lat: 35.2220, Lng: -101.8313},
	{Key: "glendale ca", Name: "Glendale Ca", State: "CA", Lat: 34.1425, Lng: -118.2551},
	{Key: "mobile", Name: "Mobile", State: "AL", Lat: 30.6954, Lng: -88.0399},
	{Key: "grand rapids", Name: "Grand Rapids", State: "MI", Lat: 42.9634, Lng: -85.6681},
	{Key: "salt lake city", Name: "Salt Lake City", State: "UT", Lat: 40.7608, Lng: -111.8910},
	{Key: "tallahassee", Name: "Tallahassee", State: "FL", Lat: 30.4383, Lng: -84.2807},
	{Key: "huntsville", Name: "Huntsville", State: "AL", Lat: 34.7304, Lng: -86.5861},
	{Key: "grand prairie", Name: "Grand Prairie", State: "TX", Lat: 32.7460, Lng: -96.9978},
	{Key: "knoxville", Name: "Knoxville", State: "TN", Lat: 35.9606, Lng: -83.9207},
	{Key: "worcester", Name: "Worcester", State: "MA", Lat: 42.2626, Lng: -71.8023},
	{Key: "newport news", Name: "Newport News", State: "VA", Lat: 37.0871, Lng: -76.4730},
	{Key: "brownsville", Name: "Brownsville", State: "TX", Lat: 25.9017, Lng: -97.4975},
	{Key: "overland park", Name: "Overland Park", State: "KS", Lat: 38.9822, Lng: -94.6708},
	{Key: "santa clarita", Name: "Santa Clarita", State: "CA", Lat: 34.3917, Lng: -118.5426},
	{Key: "providence", Name: "Providence", State: "RI", Lat: 41.8240, Lng: -71.4128},
	{Key: "garden grove", Name: "Garden Grove", State: "CA", Lat: 33.7739, Lng: -117.9414},
	{Key: "chattanooga", Name: "Chattanooga", State: "TN", Lat: 35.0456, Lng: -85.3097},
	{Key: "oceanside", Name: "Oceanside", State: "CA", Lat: 33.1959, Lng: -117.3795},
	{Key: "jackson", Name: "Jackson", State: "MS", Lat: 32.2988, Lng: -90.1848},
	{Key: "fort lauderdale", Name: "Fort Lauderdale", State: "FL", Lat: 26.1224, Lng: -80.1373},
	{Key: "santa rosa", Name: "Santa Rosa", State: "CA", Lat: 38.4405, Lng: -122.7144},
	{Key: "rancho cucamonga", Name: "Rancho Cucamonga", State: "CA", Lat: 34.1064, Lng: -117.5931},
	{Key: "port st. lucie", Name: "Port St. Lucie", State: "FL", Lat: 27.2730, Lng: -80.3582},
	{Key: "tempe", Name: "Tempe", State: "AZ", Lat: 33.4255, Lng: -111.9400},
	{Key: "ontario ca", Name: "Ontario Ca", State: "CA", Lat: 34.0633, Lng: -117.6509},
	{Key: "vancouver", Name: "Vancouver", State: "WA", Lat: 45.6387, Lng: -122.6615},
	{Key: "cape coral", Name: "Cape Coral", State: "FL", Lat: 26.5629, Lng: -81.9495},
	{Key: "sioux falls", Name: "Sioux Falls", State: "SD", Lat: 43.5446, Lng: -96.7311},
	{Key: "springfield mo", Name: "Springfield Mo", State: "MO", Lat: 37.2090, Lng: -93.2923},
	{Key: "peoria", Name: "Peoria", State: "AZ", Lat: 33.5806, Lng: -112.2374},
	{Key: "pembroke pines", Name: "Pembroke Pines", State: "FL", Lat: 26.0128, Lng: -80.2239},
	{Key: "elk grove", Name: "Elk Grove", State: "CA", Lat: 38.4088, Lng: -121.3716},
	{Key: "salem", Name: "Salem", State: "OR", Lat: 44.9429, Lng: -123.0351},
	{Key: "lancaster ca", Name: "Lancaster Ca", State: "CA", Lat: 34.6868, Lng: -118.1542},
	{Key: "corona", Name: "Corona", State: "CA", Lat: 33.8753, Lng: -117.5664},
	{Key: "eugene", Name: "Eugene", State: "OR", Lat: 44.0521, Lng: -123.0868},
	{Key: "palmdale", Name: "Palmdale", State: "CA", Lat: 34.5794, Lng: -118.1165},
	{Key: "salinas", Name: "Salinas", State: "CA", Lat: 36.6777, Lng: -121.6555},
	{Key: "springfield ma", Name: "Springfield Ma", State: "MA", Lat: 42.1015, Lng: -72.5898},
	{Key: "pasadena tx", Name: "Pasadena Tx", State: "TX", Lat: 29.6911, Lng: -95.2091},
	{Key: "fort collins", Name: "Fort Collins", State: "CO", Lat: 40.5853, Lng: -105.0844},
	{Key: "hayward", Name: "Hayward", State: "CA", Lat: 37.6688, Lng: -122.0808},
	{Key: "pomona", Name: "Pomona", State: "CA", Lat: 34.0551, Lng: -117.7500},
	{Key: "cary", Name: "Cary", State: "NC", Lat: 35.7915, Lng: -78.7811},
	{Key: "rockford", Name: "Rockford", State: "IL", Lat: 42.2711, Lng: -89.0940},
	{Key: "alexandria", Name: "Alexandria", State: "VA", Lat: 38.8048, Lng: -77.0469},
	{Key: "escondido", Name: "Escondido", State: "CA", Lat: 33.1192, Lng: -117.0864},
	{Key: "mckinney", Name: "Mckinney", State: "TX", Lat: 33.1972, Lng: -96.6397},
	{Key: "kansas city ks", Name: "Kansas City Ks", State: "KS", Lat: 39.1142, Lng: -94.6275},
	{Key: "joliet", Name: "Joliet", State: "IL", Lat: 41.5250, Lng: -88.0817},
	{Key: "sunnyvale", Name: "Sunnyvale", State: "CA", Lat: 37.3688, Lng: -122.0363},
	{Key: "torrance", Name: "Torrance", State: "CA", Lat: 33.8358, Lng: -118.3406},
	{Key: "bridgeport", Name: "Bridgeport", State: "CT", Lat: 41.1865, Lng: -73.1952},
	{Key: "lakewood", Name: "Lakewood", State: "CO", Lat: 39.7047, Lng: -105.0814},
	{Key: "hollywood", Name: "Hollywood", State: "FL", Lat: 26.0112, Lng: -80.1495},
	{Key: "paterson", Name: "Paterson", State: "NJ", Lat: 40.9168, Lng: -74.1718},
	{Key: "naperville", Name: "Naperville", State: "IL", Lat: 41.7508, Lng: -88.1535},
	{Key: "syracuse", Name: "Syracuse", State: "NY", Lat: 43.0481, Lng: -76.1474},
	{Key: "mesquite", Name: "Mesquite", State: "TX", Lat: 32.7668, Lng: -96.5992},
	{Key: "dayton", Name: "Dayton", State: "OH", Lat: 39.7589, Lng: -84.1916},
	{Key: "savannah", Name: "Savannah", State: "GA", Lat: 32.0809, Lng: -81.0912},
	{Key: "clarksville", Name: "Clarksville", State: "TN", Lat: 36.5298, Lng: -87.3595},
	{Key: "orange", Name: "Orange", State: "CA", Lat: 33.7879, Lng: -117.8531},
	{Key: "pasadena ca", Name: "Pasadena Ca", State: "CA", Lat: 34.1478, Lng: -118.1445},
	{Key: "fullerton", Name: "Fullerton", State: "CA", Lat: 33.8703, Lng: -117.9253},
	{Key: "killeen", Name: "Killeen", State: "TX", Lat: 31.1171, Lng: -97.7278},
	{Key: "frisco", Name: "Frisco", State: "TX", Lat: 33.1507, Lng: -96.8236},
	{Key: "hampton", Name: "Hampton", State: "VA", Lat: 37.0299, Lng: -76.3452},
	{Key: "mcallen", Name: "Mcallen", State: "TX", Lat: 26.2034, Lng: -98.2300},
	{Key: "warren", Name: "Warren", State: "MI", Lat: 42.5145, Lng: -83.0147},
	{Key: "bellevue", Name: "Bellevue", State: "WA", Lat: 47.6101, Lng: -122.2015},
	{Key: "west valley city", Name: "West Valley City", State: "UT", Lat: 40.6916, Lng: -112.0011},
	{Key: "columbia sc", Name: "Columbia Sc", State: "SC", Lat: 34.0007, Lng: -81.0348},
	{Key: "olathe", Name: "Olathe", State: "KS", Lat: 38.8814, Lng: -94.8191},
	{Key: "sterling heights", Name: "Sterling Heights", State: "MI", Lat: 42.5803, Lng: -83.0302},
	{Key: "new haven", Name: "New Haven", State: "CT", Lat: 41.3082, Lng: -72.9251},
	{Key: "miramar", Name: "Miramar", State: "FL", Lat: 25.9860, Lng: -80.3036},
	{Key: "waco", Name: "Waco", State: "TX", Lat: 31.5493, Lng: -97.1467},
	{Key: "thousand oaks", Name: "Thousand Oaks", State: "CA", Lat: 34.1706, Lng: -118.8376},
	{Key: "cedar rapids", Name: "Cedar Rapids", State: "IA", Lat: 41.9779, Lng: -91.6656},
	{Key: "charleston", Name: "Charleston", State: "SC", Lat: 32.7765, Lng: -79.9311},
	{Key: "visalia", Name: "Visalia", State: "CA", Lat: 36.3302, Lng: -119.2921},
	{Key: "topeka", Name: "Topeka", State: "KS", Lat: 39.0473, Lng: -95.6752},
	{Key: "elizabeth", Name: "Elizabeth", State: "NJ", Lat: 40.6640, Lng: -74.2107},
	{Key: "gainesville", Name: "Gainesville", State: "FL", Lat: 29.6516, Lng: -82.3248},
	{Key: "thornton", Name: "Thornton", State: "CO", Lat: 39.8680, Lng: -104.9719},
	{Key: "roseville", Name: "Roseville", State: "CA", Lat: 38.7521, Lng: -121.2880},
	{Key: "carrollton", Name: "Carrollton", State: "TX", Lat: 32.9537, Lng: -96.8903},
	{Key: "coral springs", Name: "Coral Springs", State: "FL", Lat: 26.2712, Lng: -80.2706},
	{Key: "stamford", Name: "Stamford", State: "CT", Lat: 41.0534, Lng: -73.5387},
	{Key: "simi valley", Name: "Simi Valley", State: "CA", Lat: 34.2694, Lng: -118.7815},
	{Key: "concord", Name: "Concord", State: "CA", Lat: 37.9780, Lng: -122.0311},
	{Key: "hartford", Name: "Hartford", State: "CT", Lat: 41.7658, Lng: -72.6734},
	{Key: "kent", Name: "Kent", State: "WA", Lat: 47.3809, Lng: -122.2348},
	{Key: "lafayette", Name: "Lafayette", State: "LA", Lat: 30.2241, Lng: -92.0198},
	{Key: "midland", Name: "Midland", State: "TX", Lat: 31.9973, Lng: -102.0779},
	{Key: "surprise", Name: "Surprise", State: "AZ", Lat: 33.6292, Lng: -112.3679},
	{Key: "denton", Name: "Denton", State: "TX", Lat: 33.2148, Lng: -97.1331},
	{Key: "victorville", Name: "Victorville", State: "CA", Lat: 34.5362, Lng: -117.2928},
	{Key: "evansville", Name: "Evansville", State: "IN", Lat: 37.9716, Lng: -87.5711},
	{Key: "santa clara", Name: "Santa Clara", State: "CA", Lat: 37.3541, Lng: -121.9552},
	{Key: "abilene", Name: "Abilene", State: "TX", Lat: 32.4487, Lng: -99.7331},
	{Key: "athens", Name: "Athens", State: "GA", Lat: 33.9519, Lng: -83.3576},
	{Key: "vallejo", Name: "Vallejo", State: "CA", Lat: 38.1041, Lng: -122.2566},
	{Key: "allentown", Name: "Allentown", State: "PA", Lat: 40.6023, Lng: -75.4714},
	{Key: "norman", Name: "Norman", State: "OK", Lat: 35.2226, Lng: -97.4395},
	{Key: "beaumont", Name: "Beaumont", State: "TX", Lat: 30.0802, Lng: -94.1266},
	{Key: "independence", Name: "Independence", State: "MO", Lat: 39.0911, Lng: -94.4155},
	{Key: "murfreesboro", Name: "Murfreesboro", State: "TN", Lat: 35.8456, Lng: -86.3903},
	{Key: "ann arbor", Name: "Ann Arbor", State: "MI", Lat: 42.2808, Lng: -83.7430},
	{Key: "springfield il", Name: "Springfield Il", State: "IL", Lat: 39.7817, Lng: -89.6501},
	{Key: "berkeley", Name: "Berkeley", State: "CA", Lat: 37.8716, Lng: -122.2727},
	{Key: "peoria il", Name: "Peoria Il", State: "IL", Lat: 40.6936, Lng: -89.5890},
	{Key: "provo", Name: "Provo", State: "UT", Lat: 40.2338, Lng: -111.6585},
	{Key: "el monte", Name: "El Monte", State: "CA", Lat: 34.0686, Lng: -118.0276},
	{Key: "columbia mo", Name: "Columbia Mo", State: "MO", Lat: 38.9517, Lng: -92.3341},
	{Key: "lansing", Name: "Lansing", State: "MI", Lat: 42.7325, Lng: -84.5555},
	{Key: "fargo", Name: "Fargo", State: "ND", Lat: 46.8772, Lng: -96.7898},
	{Key: "downey", Name: "Downey", State: "CA", Lat: 33.9401, Lng: -118.1332},
	{Key: "costa mesa", Name: "Costa Mesa", State: "CA", Lat: 33.6411, Lng: -117.9187},
	{Key: "wilmington", Name: "Wilmington", State: "NC", Lat: 34.2257, Lng: -77.9447},
	{Key: "arvada", Name: "Arvada", State: "CO", Lat: 39.8028, Lng: -105.0875},
	{Key: "inglewood", Name: "Inglewood", State: "CA", Lat: 33.9617, Lng: -118.3531},
	{Key: "miami gardens", Name: "Miami Gardens", State: "FL", Lat: 25.9420, Lng: -80.2456},
	{Key: "carlsbad", Name: "Carlsbad", State: "CA", Lat: 33.1581, Lng: -117.3506},
	{Key: "westminster co", Name: "Westminster Co", State: "CO", Lat: 39.8367, Lng: -105.0372},
	{Key: "rochester mn", Name: "Rochester Mn", State: "MN", Lat: 44.0121, Lng: -92.4802},
	{Key: "odessa", Name: "Odessa", State: "TX", Lat: 31.8457, Lng: -102.3676},
	{Key: "manchester", Name: "Manchester", State: "NH", Lat: 42.9956, Lng: -71.4548},
	{Key: "elgin", Name: "Elgin", State: "IL", Lat: 42.0354, Lng: -88.2826},
	{Key: "west jordan", Name: "West Jordan", State: "UT", Lat: 40.6097, Lng: -111.9391},
	{Key: "round rock", Name: "Round Rock", State: "TX", Lat: 30.5083, Lng: -97.6789},
	{Key: "clearwater", Name: "Clearwater", State: "FL", Lat: 27.9659, Lng: -82.8001},
	{Key: "waterbury", Name: "Waterbury", State: "CT", Lat: 41.5582, Lng: -73.0515},
	{Key: "gresham", Name: "Gresham", State: "OR", Lat: 45.4983, Lng: -122.4310},
	{Key: "fairfield", Name: "Fairfield", State: "CA", Lat: 38.2494, Lng: -122.0400},
	{Key: "billings", Name: "Billings", State: "MT", Lat: 45.7833, Lng: -108.5007},
	{Key: "lowell", Name: "Lowell", State: "MA", Lat: 42.6334, Lng: -71.3162},
	{Key: "san buenaventura", Name: "San Buenaventura", State: "CA", Lat: 34.2746, Lng: -119.2290},
	{Key: "pueblo", Name: "Pueblo", State: "CO", Lat: 38.2545, Lng: -104.6091},
	{Key: "high point", Name: "High Point", State: "NC", Lat: 35.9557, Lng: -80.0053},
	{Key: "west covina", Name: "West Covina", State: "CA", Lat: 34.0686, Lng: -117.9390},
	{Key: "richmond ca", Name: "Richmond Ca", State: "CA", Lat: 37.9358, Lng: -122.3478},
	{Key: "murrieta", Name: "Murrieta", State: "CA", Lat: 33.5539, Lng: -117.2139},
	{Key: "cambridge", Name: "Cambridge", State: "MA", Lat: 42.3736, Lng: -71.1097},
	{Key: "antioch", Name: "Antioch", State: "CA", Lat: 38.0049, Lng: -121.8058},
	{Key: "temecula", Name: "Temecula", State: "CA", Lat: 33.4936, Lng: -117.1484},
	{Key: "norwalk", Name: "Norwalk", State: "CA", Lat: 33.9022, Lng: -118.0817},
	{Key: "centennial", Name: "Centennial", State: "CO", Lat: 39.5791, Lng: -104.8769},
	{Key: "everett", Name: "Everett", State: "WA", Lat: 47.9790, Lng: -122.2021},
	{Key: "palm bay", Name: "Palm Bay", State: "FL", Lat: 28.0345, Lng: -80.5887},
	{Key: "wichita falls", Name: "Wichita Falls", State: "TX", Lat: 33.9137, Lng: -98.4934},
	{Key: "green bay", Name: "Green Bay", State: "WI", Lat: 44.5133, Lng: -88.0133},
	{Key: "daly city", Name: "Daly City", State: "CA", Lat: 37.6879, Lng: -122.4702},
	{Key: "burbank", Name: "Burbank", State: "CA", Lat: 34.1808, Lng: -118.3090},
	{Key: "richardson", Name: "Richardson", State: "TX", Lat: 32.9483, Lng: -96.7299},
	{Key: "pompano beach", Name: "Pompano Beach", State: "FL", Lat: 26.2379, Lng: -80.1248},
	{Key: "north charleston", Name: "North Charleston", State: "SC", Lat: 32.8546, Lng: -79.9748},
	{Key: "broken arrow", Name: "Broken Arrow", State: "OK", Lat: 36.0609, Lng: -95.7975},
	{Key: "boulder", Name: "Boulder", State: "CO", Lat: 40.0150, Lng: -105.2705},
	{Key: "west palm beach", Name: "West Palm Beach", State: "FL", Lat: 26.7153, Lng: -80.0534},
	{Key: "santa maria", Name: "Santa Maria", State: "CA", Lat: 34.9530, Lng: -120.4357},
	{Key: "el cajon", Name: "El Cajon", State: "CA", Lat: 32.7948, Lng: -116.9625},
	{Key: "davenport", Name: "Davenport", State: "IA", Lat: 41.5236, Lng: -90.5776},
	{Key: "rialto", Name: "Rialto", State: "CA", Lat: 34.1064, Lng: -117.3703},
	{Key: "las cruces", Name: "Las Cruces", State: "NM", Lat: 32.3199, Lng: -106.7637},
	{Key: "san mateo", Name: "San Mateo", State: "CA", Lat: 37.5630, Lng: -122.3255},
	{Key: "lewisville", Name: "Lewisville", State: "TX", Lat: 33.0462, Lng: -96.9942},
	{Key: "south bend", Name: "South Bend", State: "IN", Lat: 41.6764, Lng: -86.2520},
	{Key: "lakeland", Name: "Lakeland", State: "FL", Lat: 28.0395, Lng: -81.9498},
	{Key: "erie", Name: "Erie", State: "PA", Lat: 42.1292, Lng: -80.0851},
	{Key: "tyler", Name: "Tyler", State: "TX", Lat: 32.3513, Lng: -95.3011},
	{Key: "pearland", Name: "Pearland", State: "TX", Lat: 29.5636, Lng: -95.2860},
	{Key: "college station", Name: "College Station", State: "TX", Lat: 30.6280, Lng: -96.3344},
	{Key: "kenosha", Name: "Kenosha", State: "WI", Lat: 42.5847, Lng: -87.8212},
	{Key: "sandy springs", Name: "Sandy Springs", State: "GA", Lat: 33.9304, Lng: -84.3733},
	{Key: "clovis", Name: "Clovis", State: "CA", Lat: 36.8252, Lng: -119.7029},
	{Key: "flint", Name: "Flint", State: "MI", Lat: 43.0125, Lng: -83.6875},
	{Key: "roanoke", Name: "Roanoke", State: "VA", Lat: 37.2710, Lng: -79.9414},
	{Key: "albany", Name: "Albany", State: "NY", Lat: 42.6526, Lng: -73.7562},
	{Key: "jurupa valley", Name: "Jurupa Valley", State: "CA", Lat: 33.9972, Lng: -117.4855},
	{Key: "compton", Name: "Compton", State: "CA", Lat: 33.8958, Lng: -118.2201},
	{Key: "san angelo", Name: "San Angelo", State: "TX", Lat: 31.4638, Lng: -100.4370},
	{Key: "hillsboro", Name: "Hillsboro", State: "OR", Lat: 45.5229, Lng: -122.9898},
	{Key: "lawton", Name: "Lawton", State: "OK", Lat: 34.6036, Lng: -98.3959},
	{Key: "renton", Name: "Renton", State: "WA", Lat: 47.4829, Lng: -122.2171},
	{Key: "vista", Name: "Vista", State: "CA", Lat: 33.2000, Lng: -117.2425},
	{Key: "greeley", Name: "Greeley", State: "CO", Lat: 40.4233, Lng: -104.7091},
	{Key: "mission viejo", Name: "Mission Viejo", State: "CA", Lat: 33.6000, Lng: -117.6720},
	{Key: "davie", Name: "Davie", State: "FL", Lat: 26.0765, Lng: -80.2521},
	{Key: "asheville", Name: "Asheville", State: "NC", Lat: 35.5951, Lng: -82.5515},
	{Key: "allen", Name: "Allen", State: "TX", Lat: 33.1032, Lng: -96.6706},
}
