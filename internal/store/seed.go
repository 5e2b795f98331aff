package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spec-kit/field-tracker/internal/domain"
)

type seedPlace struct {
	name string
	id   string
	lat  float64
	lng  float64
}

type seedCity struct {
	name string
	id   string
	lat  float64
	lng  float64
}

type seedRegion struct {
	name   string
	id     string
	cities []seedCity
}

var seedFirstNames = []string{"أحمد", "محمد", "علي", "حسن", "خالد", "عبدالله", "يوسف", "إبراهيم", "عبدالعزيز", "فهد", "سلطان", "ناصر", "سعد", "فيصل", "عبدالرحمن", "طلال", "بندر", "ماجد", "سلمان", "تركي"}

var seedFemaleFirstNames = []string{"فاطمة", "عائشة", "خديجة", "زينب", "مريم", "سارة", "نورا", "هند", "ريم", "منى", "أمل", "رانيا", "دانة", "شهد", "لجين", "روان", "غدير", "جود", "لمى", "نهى"}

var seedLastNames = []string{"أحمد", "علي", "محمد", "عبدالله", "السعيد", "الأحمد", "الحربي", "العتيبي", "المطيري", "الدوسري", "القحطاني", "الغامدي", "الزهراني", "الشهري", "عسيري", "الثقفي", "البقمي", "الجهني", "العوفي", "السلمي"}

var seedNeighborhoods = []seedPlace{
	{"حي العليا", "olaya", 24.7000, 46.6900},
	{"حي الملز", "malaz", 24.6877, 46.7219},
	{"حي النخيل", "nakheel", 24.7136, 46.6753},
	{"حي الروضة", "rawdah", 24.7200, 46.6400},
	{"حي الصحافة", "sahafa", 24.7300, 46.6600},
	{"حي الياسمين", "yasmin", 24.7400, 46.6500},
	{"حي الحمراء", "hamra", 24.7500, 46.6700},
	{"حي السليمانية", "sulaymaniyah", 24.6900, 46.6800},
	{"حي المرسلات", "mursalat", 24.7100, 46.6200},
	{"حي القادسية", "qadisiyah", 24.6950, 46.7150},
	{"حي النرجس", "narjis", 24.7250, 46.6350},
	{"حي الواحة", "wahat", 24.7350, 46.6450},
	{"حي الربيع", "rabee", 24.7450, 46.6550},
	{"حي الورود", "worod", 24.7150, 46.6650},
	{"حي الندى", "nada", 24.7050, 46.6750},
	{"حي الفلاح", "falah", 24.6850, 46.6850},
	{"حي الخليج", "khaleej", 24.6750, 46.6950},
	{"حي البديعة", "badeea", 24.7550, 46.6250},
	{"حي الغدير", "ghadeer", 24.7650, 46.6150},
	{"حي المونسية", "munsiyah", 24.7750, 46.6050},
	{"حي قرطبة", "qurtuba", 24.7850, 46.5950},
	{"حي الرمال", "ramal", 24.7950, 46.5850},
	{"حي النسيم", "naseem", 24.8050, 46.5750},
	{"حي الروابي", "rawabi", 24.8150, 46.5650},
}

var seedLanguageSets = [][]string{
	{"العربية"},
	{"العربية", "الإنجليزية"},
	{"العربية", "الإنجليزية", "الفرنسية"},
	{"العربية", "الأردية"},
	{"العربية", "الإنجليزية", "الأردية"},
	{"العربية", "التركية"},
	{"العربية", "الإنجليزية", "الألمانية"},
}

var seedCourseSets = [][]string{
	{"خدمة العملاء"},
	{"المبيعات"},
	{"التسويق الرقمي"},
	{"إدارة المشاريع"},
	{"التفاوض"},
	{"المبيعات", "خدمة العملاء"},
	{"التسويق", "المبيعات"},
	{"إدارة الوقت", "القيادة"},
	{"التسويق الرقمي", "وسائل التواصل"},
	{"المبيعات", "التفاوض", "إدارة العملاء"},
}

var seedCompanies = []string{"شركة الاتصالات", "مؤسسة الخليج", "شركة البناء", "مجموعة الرياض", "شركة الصناعات", "مؤسسة التجارة", "شركة التقنية", "مجموعة الاستثمار"}

var seedStatuses = []domain.EmployeeStatus{domain.StatusAvailable, domain.StatusBusy, domain.StatusOffline}

// seedRegions covers cities outside the Riyadh region that receive a
// handful of generated employees each.
var seedRegions = []seedRegion{
	{"مكة المكرمة", "makkah", []seedCity{
		{"مكة المكرمة", "makkah-city", 21.4225, 39.8262},
		{"جدة", "jeddah", 21.4858, 39.1925},
		{"الطائف", "taif", 21.2703, 40.4150},
	}},
	{"المدينة المنورة", "medina", []seedCity{
		{"المدينة المنورة", "medina-city", 24.4681, 39.6142},
		{"ينبع", "yanbu", 24.0896, 38.0618},
	}},
	{"المنطقة الشرقية", "eastern", []seedCity{
		{"الدمام", "dammam", 26.4207, 50.0888},
		{"الخبر", "khobar", 26.2172, 50.1971},
		{"الأحساء", "ahsa", 25.4295, 49.5930},
		{"الجبيل", "jubail", 27.0174, 49.6251},
	}},
	{"عسير", "asir", []seedCity{
		{"أبها", "abha", 18.2164, 42.5048},
		{"خميس مشيط", "khamis", 18.3059, 42.7289},
	}},
	{"تبوك", "tabuk", []seedCity{
		{"تبوك", "tabuk-city", 28.3998, 36.5700},
	}},
	{"حائل", "hail", []seedCity{
		{"حائل", "hail-city", 27.5114, 41.6900},
	}},
	{"الحدود الشمالية", "northern", []seedCity{
		{"عرعر", "arar", 30.9753, 41.0381},
	}},
	{"جازان", "jazan", []seedCity{
		{"جازان", "jazan-city", 16.8892, 42.5511},
	}},
	{"نجران", "najran", []seedCity{
		{"نجران", "najran-city", 17.4924, 44.1277},
	}},
	{"الباحة", "baha", []seedCity{
		{"الباحة", "baha-city", 20.0129, 41.4687},
	}},
	{"الجوف", "jouf", []seedCity{
		{"سكاكا", "sakaka", 29.9697, 40.2064},
	}},
	{"القصيم", "qassim", []seedCity{
		{"بريدة", "buraidah", 26.3260, 43.9750},
		{"عنيزة", "unaizah", 26.0877, 43.9986},
	}},
}

// Seed populates the store with generated sample employees: a fixed
// Riyadh roster plus randomized staff across Saudi regions. Intended
// for a fresh store at process start.
func (s *MemStore) Seed(rng *rand.Rand) {
	now := time.Now()

	for _, emp := range fixedSeedEmployees(now) {
		s.insertSeeded(emp)
	}

	// Two employees in each of the newer Riyadh districts.
	specific := seedNeighborhoods[19:]
	for idx, hood := range specific {
		for j := 0; j < 2; j++ {
			emp := randomEmployee(rng, now, hood.name, "riyadh", "riyadh-city", hood.id, hood.lat, hood.lng, 0.01)
			emp.Phone = fmt.Sprintf("05012%d%02d", 100+idx*10+j, rng.Intn(100))
			s.insertSeeded(emp)
		}
	}

	// Two to four employees per city in the other regions.
	for _, region := range seedRegions {
		for _, city := range region.cities {
			count := rng.Intn(3) + 2
			for k := 0; k < count; k++ {
				emp := randomEmployee(rng, now, city.name, region.id, city.id, city.id+"-center", city.lat, city.lng, 0.02)
				emp.Phone = "05013" + strconv.Itoa(rng.Intn(900000)+100000)
				s.insertSeeded(emp)
			}
		}
	}

	// Remaining randomized Riyadh staff.
	for i := 9; i <= 40; i++ {
		hood := seedNeighborhoods[rng.Intn(len(seedNeighborhoods))]
		emp := randomEmployee(rng, now, hood.name, "riyadh", "riyadh-city", hood.id, hood.lat, hood.lng, 0.02)
		emp.Phone = fmt.Sprintf("05012345%02d", i)
		s.insertSeeded(emp)
	}
}

// insertSeeded stores an employee keeping its pre-set lastUpdate, so
// offline staff can carry an older timestamp.
func (s *MemStore) insertSeeded(emp domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp.ID = s.nextEmployeeID
	s.nextEmployeeID++
	s.employees[emp.ID] = emp
}

func randomEmployee(rng *rand.Rand, now time.Time, place, regionID, cityID, neighborhoodID string, lat, lng, jitter float64) domain.Employee {
	var first string
	if rng.Float64() > 0.5 {
		first = seedFemaleFirstNames[rng.Intn(len(seedFemaleFirstNames))]
	} else {
		first = seedFirstNames[rng.Intn(len(seedFirstNames))]
	}
	last := seedLastNames[rng.Intn(len(seedLastNames))]
	status := seedStatuses[rng.Intn(len(seedStatuses))]

	latitude := formatCoord(lat + (rng.Float64()-0.5)*jitter*2)
	longitude := formatCoord(lng + (rng.Float64()-0.5)*jitter*2)

	lastUpdate := now.Add(-time.Duration(rng.Float64() * float64(30*time.Minute)))
	if status == domain.StatusOffline {
		lastUpdate = now.Add(-time.Duration(rng.Float64() * float64(2*time.Hour)))
	}

	emp := domain.Employee{
		Name:            first + " " + last,
		Status:          status,
		Latitude:        &latitude,
		Longitude:       &longitude,
		Location:        strPtr(place),
		RegionID:        strPtr(regionID),
		CityID:          strPtr(cityID),
		NeighborhoodID:  strPtr(neighborhoodID),
		LastUpdate:      lastUpdate,
		Languages:       seedLanguageSets[rng.Intn(len(seedLanguageSets))],
		TrainingCourses: seedCourseSets[rng.Intn(len(seedCourseSets))],
	}
	if status == domain.StatusBusy {
		emp.CustomerID = strPtr(fmt.Sprintf("CUST%03d", rng.Intn(999)))
		emp.CustomerName = strPtr(seedCompanies[rng.Intn(len(seedCompanies))])
	}
	return emp
}

// fixedSeedEmployees is the handcrafted Riyadh roster shown on the map
// by default.
func fixedSeedEmployees(now time.Time) []domain.Employee {
	return []domain.Employee{
		{
			Name: "محمد أحمد", Phone: "0501234567", Status: domain.StatusAvailable,
			Latitude: strPtr("24.7136"), Longitude: strPtr("46.6753"), Location: strPtr("حي النخيل"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("nakheel"),
			LastUpdate: now,
			Languages:  []string{"العربية", "الإنجليزية"}, TrainingCourses: []string{"التسويق الرقمي", "المبيعات"},
		},
		{
			Name: "سارة علي", Phone: "0501234568", Status: domain.StatusBusy,
			Latitude: strPtr("24.7000"), Longitude: strPtr("46.6900"), Location: strPtr("حي العليا"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("olaya"),
			LastUpdate: now, CustomerID: strPtr("CUST001"), CustomerName: strPtr("شركة الاتصالات"),
			Languages: []string{"العربية", "الإنجليزية", "الفرنسية"}, TrainingCourses: []string{"خدمة العملاء", "التسويق"},
		},
		{
			Name: "خالد عبدالله", Phone: "0501234569", Status: domain.StatusOffline,
			Latitude: strPtr("24.6877"), Longitude: strPtr("46.7219"), Location: strPtr("حي الملز"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("malaz"),
			LastUpdate: now.Add(-time.Hour),
			Languages:  []string{"العربية"}, TrainingCourses: []string{"المبيعات", "إدارة الوقت"},
		},
		{
			Name: "فاطمة محمد", Phone: "0501234570", Status: domain.StatusAvailable,
			Latitude: strPtr("24.7200"), Longitude: strPtr("46.6400"), Location: strPtr("حي الروضة"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("rawdah"),
			LastUpdate: now,
			Languages:  []string{"العربية", "الإنجليزية"}, TrainingCourses: []string{"إدارة المشاريع", "التسويق"},
		},
		{
			Name: "علي حسن", Phone: "0501234571", Status: domain.StatusBusy,
			Latitude: strPtr("24.7300"), Longitude: strPtr("46.6600"), Location: strPtr("حي الصحافة"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("sahafa"),
			LastUpdate: now, CustomerID: strPtr("CUST002"), CustomerName: strPtr("مؤسسة الخليج"),
			Languages: []string{"العربية", "الإنجليزية", "الأردية"}, TrainingCourses: []string{"المبيعات", "التفاوض"},
		},
		{
			Name: "منى سالم", Phone: "0501234572", Status: domain.StatusAvailable,
			Latitude: strPtr("24.7400"), Longitude: strPtr("46.6500"), Location: strPtr("حي الياسمين"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("yasmin"),
			LastUpdate: now,
			Languages:  []string{"العربية"}, TrainingCourses: []string{"خدمة العملاء"},
		},
		{
			Name: "عمر إبراهيم", Phone: "0501234573", Status: domain.StatusBusy,
			Latitude: strPtr("24.7500"), Longitude: strPtr("46.6700"), Location: strPtr("حي الحمراء"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("hamra"),
			LastUpdate: now, CustomerID: strPtr("CUST003"), CustomerName: strPtr("شركة البناء"),
			Languages: []string{"العربية", "الإنجليزية"}, TrainingCourses: []string{"التسويق", "المبيعات", "إدارة الوقت"},
		},
		{
			Name: "هند عبدالرحمن", Phone: "0501234574", Status: domain.StatusAvailable,
			Latitude: strPtr("24.7600"), Longitude: strPtr("46.6800"), Location: strPtr("حي الربيع"),
			RegionID: strPtr("riyadh"), CityID: strPtr("riyadh-city"), NeighborhoodID: strPtr("rabee"),
			LastUpdate: now,
			Languages:  []string{"العربية", "الإنجليزية", "الفرنسية"}, TrainingCourses: []string{"إدارة المشاريع", "القيادة"},
		},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func strPtr(s string) *string {
	return &s
}
