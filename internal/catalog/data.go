package catalog

// defaultCategories is the built-in product catalog: electronics,
// fashion, food, automotive, home and beauty, with both English and
// French entries where recognized documents use either.
var defaultCategories = []Category{
	{
		Name:     "Smartphones",
		Keywords: []string{"phone", "smartphone", "mobile", "cell", "téléphone"},
		Brands: []string{
			"iPhone", "Apple", "Samsung", "Galaxy", "Xiaomi", "Redmi", "Mi",
			"Huawei", "Honor", "Nokia", "OnePlus", "Oppo", "Vivo", "Realme",
			"Google Pixel", "Sony Xperia", "LG", "Motorola", "Asus", "ZTE",
		},
	},
	{
		Name:     "Computers & Laptops",
		Keywords: []string{"laptop", "computer", "pc", "desktop", "notebook", "macbook", "ordinateur"},
		Brands: []string{
			"Apple", "MacBook", "iMac", "Mac Pro", "Dell", "HP", "Hewlett Packard",
			"Lenovo", "ThinkPad", "Asus", "Acer", "MSI", "Razer", "Alienware",
			"Microsoft Surface", "Samsung", "Toshiba", "Sony Vaio", "Huawei MateBook",
		},
	},
	{
		Name:     "Electronics",
		Keywords: []string{"tablet", "ipad", "watch", "smartwatch", "earbuds", "headphones"},
		Brands: []string{
			"iPad", "Apple Watch", "AirPods", "Samsung Galaxy Tab", "Galaxy Watch",
			"Amazon Kindle", "Fire Tablet", "Fitbit", "Garmin", "Sony", "Bose",
			"JBL", "Beats", "Sennheiser", "Audio-Technica",
		},
	},
	{
		Name:     "Sportswear",
		Keywords: []string{"shoes", "sneakers", "chaussures", "shirt", "t-shirt", "pants", "shorts"},
		Brands: []string{
			"Nike", "Adidas", "Puma", "Reebok", "Under Armour", "New Balance",
			"Converse", "Vans", "Fila", "Champion", "Jordan", "Yeezy",
			"Asics", "Skechers", "Columbia", "The North Face", "Patagonia",
		},
	},
	{
		Name:     "Fashion",
		Keywords: []string{"jacket", "coat", "dress", "jeans", "hoodie", "sweater", "vêtement"},
		Brands: []string{
			"Zara", "H&M", "Gucci", "Louis Vuitton", "Chanel", "Prada", "Dior",
			"Versace", "Armani", "Calvin Klein", "Tommy Hilfiger", "Ralph Lauren",
			"Lacoste", "Hugo Boss", "Burberry", "Levi's", "Gap", "Uniqlo",
		},
	},
	{
		Name:     "Fruits",
		Keywords: []string{"fruit", "fresh", "organic", "bio"},
		Brands: []string{
			"Banana", "Banane", "Apple", "Pomme", "Orange", "Pineapple", "Ananas",
			"Mango", "Mangue", "Strawberry", "Fraise", "Watermelon", "Pastèque",
			"Grape", "Raisin", "Lemon", "Citron", "Kiwi", "Peach", "Pêche",
			"Pear", "Poire", "Cherry", "Cerise", "Avocado", "Avocat",
		},
	},
	{
		Name:     "Vegetables",
		Keywords: []string{"vegetable", "légume", "veggie", "organic"},
		Brands: []string{
			"Tomato", "Tomate", "Cucumber", "Concombre", "Onion", "Oignon",
			"Carrot", "Carotte", "Potato", "Pomme de terre", "Lettuce", "Laitue",
			"Broccoli", "Brocoli", "Spinach", "Épinard", "Pepper", "Poivron",
			"Cabbage", "Chou", "Celery", "Céleri", "Zucchini", "Courgette",
		},
	},
	{
		Name:     "Beverages",
		Keywords: []string{"drink", "beverage", "soda", "juice", "water", "boisson"},
		Brands: []string{
			"Coca-Cola", "Coke", "Pepsi", "Sprite", "Fanta", "Mountain Dew",
			"Red Bull", "Monster Energy", "Gatorade", "Tropicana", "Minute Maid",
			"Evian", "Perrier", "San Pellegrino", "Vittel", "Nestlé",
		},
	},
	{
		Name:     "Cars",
		Keywords: []string{"car", "vehicle", "auto", "voiture", "automobile"},
		Brands: []string{
			"Mercedes", "Mercedes-Benz", "BMW", "Audi", "Volkswagen", "VW",
			"Porsche", "Ferrari", "Lamborghini", "Volvo", "Tesla", "Ford",
			"Toyota", "Honda", "Nissan", "Mazda", "Hyundai", "Kia", "Lexus",
			"Jaguar", "Land Rover", "Range Rover", "Bentley", "Rolls-Royce",
			"Peugeot", "Renault", "Citroën", "Fiat", "Alfa Romeo", "Chevrolet",
		},
	},
	{
		Name:     "Furniture",
		Keywords: []string{"furniture", "table", "chair", "sofa", "bed", "meuble"},
		Brands: []string{
			"IKEA", "Ashley", "Wayfair", "West Elm", "Pottery Barn", "Crate & Barrel",
			"CB2", "Room & Board", "Article", "Restoration Hardware", "La-Z-Boy",
		},
	},
	{
		Name:     "Beauty",
		Keywords: []string{"makeup", "cosmetic", "perfume", "beauty", "beauté", "parfum"},
		Brands: []string{
			"L'Oréal", "Maybelline", "MAC", "Estée Lauder", "Clinique", "Lancôme",
			"Dior", "Chanel", "YSL", "Nars", "Urban Decay", "Sephora", "NYX",
			"Revlon", "CoverGirl", "Neutrogena", "Nivea", "Dove", "Olay",
		},
	},
}
