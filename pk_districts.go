package postaddr

// pkProvinces lists the Pakistani provinces and territories with their
// districts. Indexes are stored in canonical text; append only.
var pkProvinces = []Division{
	{Name: "Balochistan", Subdivisions: []string{
		"Awaran", "Barkhan", "Chagai", "Chaman", "Dera Bugti", "Duki", "Gwadar", "Harnai", "Hub",
		"Jafarabad", "Jhal Magsi", "Kachhi", "Kalat", "Kech", "Kharan", "Khuzdar",
		"Killa Abdullah", "Killa Saifullah", "Kohlu", "Lasbela", "Loralai", "Mastung", "Musakhel",
		"Nasirabad", "Nushki", "Panjgur", "Pishin", "Quetta", "Sherani", "Sibi", "Sohbatpur",
		"Surab", "Usta Muhammad", "Washuk", "Zhob", "Ziarat",
	}},
	{Name: "Gilgit-Baltistan", Subdivisions: []string{
		"Astore", "Darel", "Diamer", "Ghanche", "Ghizer", "Gilgit", "Gupis-Yasin", "Hunza",
		"Kharmang", "Nagar", "Roundu", "Shigar", "Skardu", "Tangir",
	}},
	{Name: "Islamabad Capital Territory", Subdivisions: []string{"Islamabad"}},
	{Name: "Khyber Pakhtunkhwa", Subdivisions: []string{
		"Abbottabad", "Bajaur", "Bannu", "Battagram", "Buner", "Charsadda", "Dera Ismail Khan",
		"Hangu", "Haripur", "Karak", "Khyber", "Kohat", "Kolai-Palas", "Kurram", "Lakki Marwat",
		"Lower Chitral", "Lower Dir", "Lower Kohistan", "Malakand", "Mansehra", "Mardan",
		"Mohmand", "North Waziristan", "Nowshera", "Orakzai", "Peshawar", "Shangla",
		"South Waziristan", "Swabi", "Swat", "Tank", "Torghar", "Upper Chitral", "Upper Dir",
		"Upper Kohistan",
	}},
	{Name: "Punjab", Subdivisions: []string{
		"Attock", "Bahawalnagar", "Bahawalpur", "Bhakkar", "Chakwal", "Chiniot",
		"Dera Ghazi Khan", "Faisalabad", "Gujranwala", "Gujrat", "Hafizabad", "Jhang", "Jhelum",
		"Kasur", "Khanewal", "Khushab", "Kot Addu", "Lahore", "Layyah", "Lodhran",
		"Mandi Bahauddin", "Mianwali", "Multan", "Murree", "Muzaffargarh", "Nankana Sahib",
		"Narowal", "Okara", "Pakpattan", "Rahim Yar Khan", "Rajanpur", "Rawalpindi", "Sahiwal",
		"Sargodha", "Sheikhupura", "Sialkot", "Talagang", "Taunsa", "Toba Tek Singh", "Vehari",
		"Wazirabad",
	}},
	{Name: "Sindh", Subdivisions: []string{
		"Badin", "Dadu", "Ghotki", "Hyderabad", "Jacobabad", "Jamshoro", "Karachi Central",
		"Karachi East", "Karachi South", "Karachi West", "Kashmore", "Keamari", "Khairpur",
		"Korangi", "Larkana", "Malir", "Matiari", "Mirpur Khas", "Naushahro Feroze",
		"Qambar Shahdadkot", "Sanghar", "Shaheed Benazirabad", "Shikarpur", "Sujawal", "Sukkur",
		"Tando Allahyar", "Tando Muhammad Khan", "Tharparkar", "Thatta", "Umerkot",
	}},
}
