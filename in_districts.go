package postaddr

// inStates lists the Indian states and union territories with their
// districts. Indexes are the codes stored in canonical text and must not be
// reordered; append new entries at the end.
var inStates = []Division{
	{Name: "Andhra Pradesh", Subdivisions: []string{
		"Alluri Sitharama Raju", "Anakapalli", "Anantapur", "Annamayya", "Bapatla", "Chittoor",
		"Dr. B.R. Ambedkar Konaseema", "East Godavari", "Eluru", "Guntur", "Kakinada", "Krishna",
		"Kurnool", "Nandyal", "NTR", "Palnadu", "Parvathipuram Manyam", "Prakasam",
		"Sri Potti Sriramulu Nellore", "Sri Sathya Sai", "Srikakulam", "Tirupati", "Visakhapatnam",
		"Vizianagaram", "West Godavari", "YSR Kadapa",
	}},
	{Name: "Arunachal Pradesh", Subdivisions: []string{
		"Anjaw", "Bichom", "Changlang", "Dibang Valley", "East Kameng", "East Siang", "Kamle",
		"Keyi Panyor", "Kra Daadi", "Kurung Kumey", "Leparada", "Lohit", "Longding",
		"Lower Dibang Valley", "Lower Siang", "Lower Subansiri", "Namsai", "Pakke Kessang",
		"Papum Pare", "Shi Yomi", "Siang", "Tawang", "Tirap", "Upper Siang", "Upper Subansiri",
		"West Kameng", "West Siang",
	}},
	{Name: "Assam", Subdivisions: []string{
		"Bajali", "Baksa", "Barpeta", "Biswanath", "Bongaigaon", "Cachar", "Charaideo", "Chirang",
		"Darrang", "Dhemaji", "Dhubri", "Dibrugarh", "Dima Hasao", "Goalpara", "Golaghat",
		"Hailakandi", "Hojai", "Jorhat", "Kamrup", "Kamrup Metropolitan", "Karbi Anglong",
		"Karimganj", "Kokrajhar", "Lakhimpur", "Majuli", "Morigaon", "Nagaon", "Nalbari",
		"Sivasagar", "Sonitpur", "South Salmara-Mankachar", "Tamulpur", "Tinsukia", "Udalguri",
		"West Karbi Anglong",
	}},
	{Name: "Bihar", Subdivisions: []string{
		"Araria", "Arwal", "Aurangabad", "Banka", "Begusarai", "Bhagalpur", "Bhojpur", "Buxar",
		"Darbhanga", "East Champaran", "Gaya", "Gopalganj", "Jamui", "Jehanabad", "Kaimur",
		"Katihar", "Khagaria", "Kishanganj", "Lakhisarai", "Madhepura", "Madhubani", "Munger",
		"Muzaffarpur", "Nalanda", "Nawada", "Patna", "Purnia", "Rohtas", "Saharsa", "Samastipur",
		"Saran", "Sheikhpura", "Sheohar", "Sitamarhi", "Siwan", "Supaul", "Vaishali",
		"West Champaran",
	}},
	{Name: "Chhattisgarh", Subdivisions: []string{
		"Balod", "Baloda Bazar", "Balrampur", "Bastar", "Bemetara", "Bijapur", "Bilaspur",
		"Dantewada", "Dhamtari", "Durg", "Gariaband", "Gaurela-Pendra-Marwahi", "Janjgir-Champa",
		"Jashpur", "Kabirdham", "Kanker", "Khairagarh-Chhuikhadan-Gandai", "Kondagaon", "Korba",
		"Koriya", "Mahasamund", "Manendragarh-Chirmiri-Bharatpur", "Mohla-Manpur-Ambagarh Chowki",
		"Mungeli", "Narayanpur", "Raigarh", "Raipur", "Rajnandgaon", "Sakti",
		"Sarangarh-Bilaigarh", "Sukma", "Surajpur", "Surguja",
	}},
	{Name: "Goa", Subdivisions: []string{"North Goa", "South Goa"}},
	{Name: "Gujarat", Subdivisions: []string{
		"Ahmedabad", "Amreli", "Anand", "Aravalli", "Banaskantha", "Bharuch", "Bhavnagar",
		"Botad", "Chhota Udaipur", "Dahod", "Dang", "Devbhoomi Dwarka", "Gandhinagar",
		"Gir Somnath", "Jamnagar", "Junagadh", "Kheda", "Kutch", "Mahisagar", "Mehsana", "Morbi",
		"Narmada", "Navsari", "Panchmahal", "Patan", "Porbandar", "Rajkot", "Sabarkantha",
		"Surat", "Surendranagar", "Tapi", "Vadodara", "Valsad",
	}},
	{Name: "Haryana", Subdivisions: []string{
		"Ambala", "Bhiwani", "Charkhi Dadri", "Faridabad", "Fatehabad", "Gurugram", "Hisar",
		"Jhajjar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Mahendragarh", "Nuh", "Palwal",
		"Panchkula", "Panipat", "Rewari", "Rohtak", "Sirsa", "Sonipat", "Yamunanagar",
	}},
	{Name: "Himachal Pradesh", Subdivisions: []string{
		"Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kinnaur", "Kullu", "Lahaul and Spiti",
		"Mandi", "Shimla", "Sirmaur", "Solan", "Una",
	}},
	{Name: "Jharkhand", Subdivisions: []string{
		"Bokaro", "Chatra", "Deoghar", "Dhanbad", "Dumka", "East Singhbhum", "Garhwa", "Giridih",
		"Godda", "Gumla", "Hazaribagh", "Jamtara", "Khunti", "Koderma", "Latehar", "Lohardaga",
		"Pakur", "Palamu", "Ramgarh", "Ranchi", "Sahibganj", "Seraikela Kharsawan", "Simdega",
		"West Singhbhum",
	}},
	{Name: "Karnataka", Subdivisions: []string{
		"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bengaluru Urban", "Bidar",
		"Chamarajanagar", "Chikkaballapur", "Chikkamagaluru", "Chitradurga", "Dakshina Kannada",
		"Davanagere", "Dharwad", "Gadag", "Hassan", "Haveri", "Kalaburagi", "Kodagu", "Kolar",
		"Koppal", "Mandya", "Mysuru", "Raichur", "Ramanagara", "Shivamogga", "Tumakuru", "Udupi",
		"Uttara Kannada", "Vijayanagara", "Vijayapura", "Yadgir",
	}},
	{Name: "Kerala", Subdivisions: []string{
		"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kasaragod", "Kollam", "Kottayam",
		"Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta", "Thiruvananthapuram", "Thrissur",
		"Wayanad",
	}},
	{Name: "Madhya Pradesh", Subdivisions: []string{
		"Agar Malwa", "Alirajpur", "Anuppur", "Ashoknagar", "Balaghat", "Barwani", "Betul",
		"Bhind", "Bhopal", "Burhanpur", "Chhatarpur", "Chhindwara", "Damoh", "Datia", "Dewas",
		"Dhar", "Dindori", "Guna", "Gwalior", "Harda", "Indore", "Jabalpur", "Jhabua", "Katni",
		"Khandwa", "Khargone", "Maihar", "Mandla", "Mandsaur", "Mauganj", "Morena",
		"Narmadapuram", "Narsinghpur", "Neemuch", "Niwari", "Pandhurna", "Panna", "Raisen",
		"Rajgarh", "Ratlam", "Rewa", "Sagar", "Satna", "Sehore", "Seoni", "Shahdol", "Shajapur",
		"Sheopur", "Shivpuri", "Sidhi", "Singrauli", "Tikamgarh", "Ujjain", "Umaria", "Vidisha",
	}},
	{Name: "Maharashtra", Subdivisions: []string{
		"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Bhandara", "Buldhana",
		"Chandrapur", "Dhule", "Gadchiroli", "Gondia", "Hingoli", "Jalgaon", "Jalna", "Kolhapur",
		"Latur", "Mumbai City", "Mumbai Suburban", "Nagpur", "Nanded", "Nandurbar", "Nashik",
		"Osmanabad", "Palghar", "Parbhani", "Pune", "Raigad", "Ratnagiri", "Sangli", "Satara",
		"Sindhudurg", "Solapur", "Thane", "Wardha", "Washim", "Yavatmal",
	}},
	{Name: "Manipur", Subdivisions: []string{
		"Bishnupur", "Chandel", "Churachandpur", "Imphal East", "Imphal West", "Jiribam",
		"Kakching", "Kamjong", "Kangpokpi", "Noney", "Pherzawl", "Senapati", "Tamenglong",
		"Tengnoupal", "Thoubal", "Ukhrul",
	}},
	{Name: "Meghalaya", Subdivisions: []string{
		"East Garo Hills", "East Jaintia Hills", "East Khasi Hills", "Eastern West Khasi Hills",
		"North Garo Hills", "Ri Bhoi", "South Garo Hills", "South West Garo Hills",
		"South West Khasi Hills", "West Garo Hills", "West Jaintia Hills", "West Khasi Hills",
	}},
	{Name: "Mizoram", Subdivisions: []string{
		"Aizawl", "Champhai", "Hnahthial", "Khawzawl", "Kolasib", "Lawngtlai", "Lunglei", "Mamit",
		"Saiha", "Saitual", "Serchhip",
	}},
	{Name: "Nagaland", Subdivisions: []string{
		"Chumoukedima", "Dimapur", "Kiphire", "Kohima", "Longleng", "Mokokchung", "Mon",
		"Niuland", "Noklak", "Peren", "Phek", "Shamator", "Tseminyu", "Tuensang", "Wokha",
		"Zunheboto",
	}},
	{Name: "Odisha", Subdivisions: []string{
		"Angul", "Balangir", "Balasore", "Bargarh", "Bhadrak", "Boudh", "Cuttack", "Deogarh",
		"Dhenkanal", "Gajapati", "Ganjam", "Jagatsinghpur", "Jajpur", "Jharsuguda", "Kalahandi",
		"Kandhamal", "Kendrapara", "Kendujhar", "Khordha", "Koraput", "Malkangiri", "Mayurbhanj",
		"Nabarangpur", "Nayagarh", "Nuapada", "Puri", "Rayagada", "Sambalpur", "Subarnapur",
		"Sundargarh",
	}},
	{Name: "Punjab", Subdivisions: []string{
		"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib", "Fazilka", "Ferozepur",
		"Gurdaspur", "Hoshiarpur", "Jalandhar", "Kapurthala", "Ludhiana", "Malerkotla", "Mansa",
		"Moga", "Pathankot", "Patiala", "Rupnagar", "Sahibzada Ajit Singh Nagar", "Sangrur",
		"Shahid Bhagat Singh Nagar", "Sri Muktsar Sahib", "Tarn Taran",
	}},
	{Name: "Rajasthan", Subdivisions: []string{
		"Ajmer", "Alwar", "Banswara", "Baran", "Barmer", "Bharatpur", "Bhilwara", "Bikaner",
		"Bundi", "Chittorgarh", "Churu", "Dausa", "Dholpur", "Dungarpur", "Hanumangarh", "Jaipur",
		"Jaisalmer", "Jalore", "Jhalawar", "Jhunjhunu", "Jodhpur", "Karauli", "Kota", "Nagaur",
		"Pali", "Pratapgarh", "Rajsamand", "Sawai Madhopur", "Sikar", "Sirohi", "Sri Ganganagar",
		"Tonk", "Udaipur",
	}},
	{Name: "Sikkim", Subdivisions: []string{
		"Gangtok", "Gyalshing", "Mangan", "Namchi", "Pakyong", "Soreng",
	}},
	{Name: "Tamil Nadu", Subdivisions: []string{
		"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
		"Dindigul", "Erode", "Kallakurichi", "Kancheepuram", "Kanniyakumari", "Karur",
		"Krishnagiri", "Madurai", "Mayiladuthurai", "Nagapattinam", "Namakkal", "Nilgiris",
		"Perambalur", "Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga", "Tenkasi",
		"Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli", "Tirupathur",
		"Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore", "Viluppuram",
		"Virudhunagar",
	}},
	{Name: "Telangana", Subdivisions: []string{
		"Adilabad", "Bhadradri Kothagudem", "Hanumakonda", "Hyderabad", "Jagtial", "Jangaon",
		"Jayashankar Bhupalpally", "Jogulamba Gadwal", "Kamareddy", "Karimnagar", "Khammam",
		"Komaram Bheem", "Mahabubabad", "Mahabubnagar", "Mancherial", "Medak",
		"Medchal-Malkajgiri", "Mulugu", "Nagarkurnool", "Nalgonda", "Narayanpet", "Nirmal",
		"Nizamabad", "Peddapalli", "Rajanna Sircilla", "Ranga Reddy", "Sangareddy", "Siddipet",
		"Suryapet", "Vikarabad", "Wanaparthy", "Warangal", "Yadadri Bhuvanagiri",
	}},
	{Name: "Tripura", Subdivisions: []string{
		"Dhalai", "Gomati", "Khowai", "North Tripura", "Sepahijala", "South Tripura", "Unakoti",
		"West Tripura",
	}},
	{Name: "Uttar Pradesh", Subdivisions: []string{
		"Agra", "Aligarh", "Ambedkar Nagar", "Amethi", "Amroha", "Auraiya", "Ayodhya", "Azamgarh",
		"Baghpat", "Bahraich", "Ballia", "Balrampur", "Banda", "Barabanki", "Bareilly", "Basti",
		"Bhadohi", "Bijnor", "Budaun", "Bulandshahr", "Chandauli", "Chitrakoot", "Deoria", "Etah",
		"Etawah", "Farrukhabad", "Fatehpur", "Firozabad", "Gautam Buddha Nagar", "Ghaziabad",
		"Ghazipur", "Gonda", "Gorakhpur", "Hamirpur", "Hapur", "Hardoi", "Hathras", "Jalaun",
		"Jaunpur", "Jhansi", "Kannauj", "Kanpur Dehat", "Kanpur Nagar", "Kasganj", "Kaushambi",
		"Kheri", "Kushinagar", "Lalitpur", "Lucknow", "Maharajganj", "Mahoba", "Mainpuri",
		"Mathura", "Mau", "Meerut", "Mirzapur", "Moradabad", "Muzaffarnagar", "Pilibhit",
		"Pratapgarh", "Prayagraj", "Raebareli", "Rampur", "Saharanpur", "Sambhal",
		"Sant Kabir Nagar", "Shahjahanpur", "Shamli", "Shravasti", "Siddharthnagar", "Sitapur",
		"Sonbhadra", "Sultanpur", "Unnao", "Varanasi",
	}},
	{Name: "Uttarakhand", Subdivisions: []string{
		"Almora", "Bageshwar", "Chamoli", "Champawat", "Dehradun", "Haridwar", "Nainital",
		"Pauri Garhwal", "Pithoragarh", "Rudraprayag", "Tehri Garhwal", "Udham Singh Nagar",
		"Uttarkashi",
	}},
	{Name: "West Bengal", Subdivisions: []string{
		"Alipurduar", "Bankura", "Birbhum", "Cooch Behar", "Dakshin Dinajpur", "Darjeeling",
		"Hooghly", "Howrah", "Jalpaiguri", "Jhargram", "Kalimpong", "Kolkata", "Malda",
		"Murshidabad", "Nadia", "North 24 Parganas", "Paschim Bardhaman", "Paschim Medinipur",
		"Purba Bardhaman", "Purba Medinipur", "Purulia", "South 24 Parganas", "Uttar Dinajpur",
	}},
	{Name: "Andaman and Nicobar Islands", Subdivisions: []string{
		"Nicobar", "North and Middle Andaman", "South Andaman",
	}},
	{Name: "Chandigarh", Subdivisions: []string{"Chandigarh"}},
	{Name: "Dadra and Nagar Haveli", Subdivisions: []string{"Dadra and Nagar Haveli"}},
	{Name: "Daman and Diu", Subdivisions: []string{"Daman", "Diu"}},
	{Name: "Delhi", Subdivisions: []string{
		"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "North East Delhi",
		"North West Delhi", "Shahdara", "South Delhi", "South East Delhi", "South West Delhi",
		"West Delhi",
	}},
	{Name: "Jammu and Kashmir", Subdivisions: []string{
		"Anantnag", "Bandipora", "Baramulla", "Budgam", "Doda", "Ganderbal", "Jammu", "Kathua",
		"Kishtwar", "Kulgam", "Kupwara", "Poonch", "Pulwama", "Rajouri", "Ramban", "Reasi",
		"Samba", "Shopian", "Srinagar", "Udhampur",
	}},
	{Name: "Ladakh", Subdivisions: []string{"Kargil", "Leh"}},
	{Name: "Lakshadweep", Subdivisions: []string{"Lakshadweep"}},
	{Name: "Puducherry", Subdivisions: []string{"Karaikal", "Mahe", "Puducherry", "Yanam"}},
}
