package product

import "time"

// seedCatalog is the fixed catalog written on first access to an empty
// store. Returned fresh each call so callers cannot alias the seed data.
func seedCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "ワイヤレスヘッドフォン",
			Description: "高音質なワイヤレスヘッドフォン。ノイズキャンセリング機能付き。",
			Price:       15800,
			Image:       "/wireless-headphones.png",
			Category:    "電子機器",
			Stock:       25,
			CreatedAt:   seedDate(2024, time.January, 15),
		},
		{
			ID:          "2",
			Name:        "スマートウォッチ",
			Description: "健康管理機能搭載のスマートウォッチ。防水仕様。",
			Price:       28900,
			Image:       "/modern-smartwatch.png",
			Category:    "電子機器",
			Stock:       18,
			CreatedAt:   seedDate(2024, time.January, 20),
		},
		{
			ID:          "3",
			Name:        "オーガニックコーヒー豆",
			Description: "厳選されたオーガニックコーヒー豆。深煎りの豊かな香り。",
			Price:       2400,
			Image:       "/organic-coffee-beans.png",
			Category:    "食品",
			Stock:       50,
			CreatedAt:   seedDate(2024, time.January, 25),
		},
		{
			ID:          "4",
			Name:        "ヨガマット",
			Description: "滑り止め加工されたプレミアムヨガマット。厚さ6mm。",
			Price:       4800,
			Image:       "/rolled-yoga-mat.png",
			Category:    "スポーツ",
			Stock:       30,
			CreatedAt:   seedDate(2024, time.February, 1),
		},
		{
			ID:          "5",
			Name:        "レザーバックパック",
			Description: "本革製の高級バックパック。ビジネスにもカジュアルにも。",
			Price:       18500,
			Image:       "/brown-leather-backpack.png",
			Category:    "ファッション",
			Stock:       12,
			CreatedAt:   seedDate(2024, time.February, 5),
		},
		{
			ID:          "6",
			Name:        "アロマディフューザー",
			Description: "超音波式アロマディフューザー。7色LEDライト付き。",
			Price:       6800,
			Image:       "/aroma-diffuser-zen.png",
			Category:    "ホーム",
			Stock:       22,
			CreatedAt:   seedDate(2024, time.February, 10),
		},
	}
}

func seedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
