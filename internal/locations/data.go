package locations

// saudiRegions is the full reference dataset. Neighborhood ids are
// unique across the hierarchy (city-suffixed where names repeat).
var saudiRegions = []Region{
	{
		ID:          "riyadh",
		Name:        "منطقة الرياض",
		Coordinates: Viewport{Lat: 24.7136, Lng: 46.6753, Zoom: 10},
		Cities: []City{
			{
				ID:       "riyadh-city",
				Name:     "الرياض",
				RegionID: "riyadh",
				Neighborhoods: []Neighborhood{
					{ID: "olaya", Name: "حي العليا", CityID: "riyadh-city"},
					{ID: "malaz", Name: "حي الملز", CityID: "riyadh-city"},
					{ID: "rawda", Name: "حي الروضة", CityID: "riyadh-city"},
					{ID: "nakheel", Name: "حي النخيل", CityID: "riyadh-city"},
					{ID: "sulaimaniya", Name: "حي السليمانية", CityID: "riyadh-city"},
					{ID: "naseem", Name: "حي النسيم", CityID: "riyadh-city"},
					{ID: "sahafa", Name: "حي الصحافة", CityID: "riyadh-city"},
					{ID: "murabba", Name: "حي المربع", CityID: "riyadh-city"},
					{ID: "batha", Name: "حي البطحاء", CityID: "riyadh-city"},
					{ID: "yamama", Name: "حي اليمامة", CityID: "riyadh-city"},
					{ID: "munsiyah", Name: "حي المونسية", CityID: "riyadh-city"},
					{ID: "qurtuba", Name: "حي قرطبة", CityID: "riyadh-city"},
					{ID: "ramal", Name: "حي الرمال", CityID: "riyadh-city"},
					{ID: "rawabi", Name: "حي الروابي", CityID: "riyadh-city"},
				},
			},
			{
				ID:       "kharj",
				Name:     "الخرج",
				RegionID: "riyadh",
				Neighborhoods: []Neighborhood{
					{ID: "kharj-center", Name: "وسط الخرج", CityID: "kharj"},
					{ID: "saih", Name: "حي السيح", CityID: "kharj"},
					{ID: "yamama-kharj", Name: "حي اليمامة", CityID: "kharj"},
				},
			},
			{
				ID:       "diriyah",
				Name:     "الدرعية",
				RegionID: "riyadh",
				Neighborhoods: []Neighborhood{
					{ID: "turaif", Name: "حي طريف", CityID: "diriyah"},
					{ID: "ghusaiba", Name: "حي الغصيبة", CityID: "diriyah"},
					{ID: "bujairi", Name: "حي البجيري", CityID: "diriyah"},
				},
			},
		},
	},
	{
		ID:          "qassim",
		Name:        "منطقة القصيم",
		Coordinates: Viewport{Lat: 26.0667, Lng: 43.9667, Zoom: 9},
		Cities: []City{
			{
				ID:       "buraidah",
				Name:     "بريدة",
				RegionID: "qassim",
				Neighborhoods: []Neighborhood{
					{ID: "rawabi-buraidah", Name: "حي الروابي", CityID: "buraidah"},
					{ID: "salamah", Name: "حي السلامة", CityID: "buraidah"},
					{ID: "jubail-buraidah", Name: "حي الجبيل", CityID: "buraidah"},
					{ID: "sadiq", Name: "حي الصديق", CityID: "buraidah"},
					{ID: "faruq", Name: "حي الفاروق", CityID: "buraidah"},
					{ID: "nakheel-buraidah", Name: "حي النخيل", CityID: "buraidah"},
					{ID: "andalus", Name: "حي الأندلس", CityID: "buraidah"},
				},
			},
			{
				ID:       "unaizah",
				Name:     "عنيزة",
				RegionID: "qassim",
				Neighborhoods: []Neighborhood{
					{ID: "wassat-unaizah", Name: "وسط عنيزة", CityID: "unaizah"},
					{ID: "faihaa", Name: "حي الفيحاء", CityID: "unaizah"},
					{ID: "qadisiyah", Name: "حي القادسية", CityID: "unaizah"},
					{ID: "sultan", Name: "حي السلطان", CityID: "unaizah"},
				},
			},
			{
				ID:       "rass",
				Name:     "الرس",
				RegionID: "qassim",
				Neighborhoods: []Neighborhood{
					{ID: "rawdah-rass", Name: "حي الروضة", CityID: "rass"},
					{ID: "salamah-rass", Name: "حي السلامة", CityID: "rass"},
					{ID: "wassat-rass", Name: "وسط الرس", CityID: "rass"},
				},
			},
		},
	},
	{
		ID:          "makkah",
		Name:        "منطقة مكة المكرمة",
		Coordinates: Viewport{Lat: 21.4225, Lng: 39.8262, Zoom: 8},
		Cities: []City{
			{
				ID:       "makkah-city",
				Name:     "مكة المكرمة",
				RegionID: "makkah",
				Neighborhoods: []Neighborhood{
					{ID: "aziziyah", Name: "حي العزيزية", CityID: "makkah-city"},
					{ID: "misfalah", Name: "حي المسفلة", CityID: "makkah-city"},
					{ID: "sharaie", Name: "حي الشرائع", CityID: "makkah-city"},
					{ID: "maabdah", Name: "حي المعابدة", CityID: "makkah-city"},
				},
			},
			{
				ID:       "jeddah",
				Name:     "جدة",
				RegionID: "makkah",
				Neighborhoods: []Neighborhood{
					{ID: "balad", Name: "حي البلد", CityID: "jeddah"},
					{ID: "hamra", Name: "حي الحمراء", CityID: "jeddah"},
					{ID: "salamah-jeddah", Name: "حي السلامة", CityID: "jeddah"},
					{ID: "corniche", Name: "حي الكورنيش", CityID: "jeddah"},
					{ID: "rawdah-jeddah", Name: "حي الروضة", CityID: "jeddah"},
				},
			},
			{
				ID:       "taif",
				Name:     "الطائف",
				RegionID: "makkah",
				Neighborhoods: []Neighborhood{
					{ID: "wassat-taif", Name: "وسط الطائف", CityID: "taif"},
					{ID: "shafa", Name: "حي الشفا", CityID: "taif"},
					{ID: "hada", Name: "حي الهدا", CityID: "taif"},
				},
			},
		},
	},
	{
		ID:          "eastern",
		Name:        "المنطقة الشرقية",
		Coordinates: Viewport{Lat: 26.4282, Lng: 50.0647, Zoom: 8},
		Cities: []City{
			{
				ID:       "dammam",
				Name:     "الدمام",
				RegionID: "eastern",
				Neighborhoods: []Neighborhood{
					{ID: "corniche-dammam", Name: "حي الكورنيش", CityID: "dammam"},
					{ID: "jalawiya", Name: "حي الجلوية", CityID: "dammam"},
					{ID: "fanateer", Name: "حي الفناتير", CityID: "dammam"},
					{ID: "badiyah", Name: "حي البادية", CityID: "dammam"},
				},
			},
			{
				ID:       "khobar",
				Name:     "الخبر",
				RegionID: "eastern",
				Neighborhoods: []Neighborhood{
					{ID: "aqrabiyah", Name: "حي العقربية", CityID: "khobar"},
					{ID: "thuqbah", Name: "حي الثقبة", CityID: "khobar"},
					{ID: "rakah", Name: "حي الركة", CityID: "khobar"},
				},
			},
			{
				ID:       "jubail",
				Name:     "الجبيل",
				RegionID: "eastern",
				Neighborhoods: []Neighborhood{
					{ID: "fanateer-jubail", Name: "حي الفناتير", CityID: "jubail"},
					{ID: "danah", Name: "حي الدانة", CityID: "jubail"},
					{ID: "sinaiyah", Name: "المنطقة الصناعية", CityID: "jubail"},
				},
			},
		},
	},
}
