package model

// City 地図の表示位置を移動するショートカット
type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// CitiesResponse GET /api/cities のレスポンス
type CitiesResponse struct {
	Cities []City `json:"cities"`
}

// GetDefaultCities サイドバーに表示する都市ショートカットを取得
func GetDefaultCities() []City {
	return []City{
		{Name: "Colombo", Lat: 6.9271, Lng: 79.8612},
		{Name: "Kandy", Lat: 7.2906, Lng: 80.6337},
		{Name: "Galle", Lat: 6.0535, Lng: 80.2210},
		{Name: "Jaffna", Lat: 9.6615, Lng: 80.0255},
		{Name: "Trinco", Lat: 8.5874, Lng: 81.2152},
		{Name: "Batticaloa", Lat: 7.7170, Lng: 81.6996},
	}
}
