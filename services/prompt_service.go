package services

import (
	"fmt"

	"bousai_recommend/models"
	"bousai_recommend/utils"
)

func yesNo(b bool) string {
	if b {
		return "いる"
	}
	return "いない"
}

// BuildRecommendationPrompt 构建防灾用品推荐提示词，包含家庭信息的全部字段
func BuildRecommendationPrompt(p models.HouseholdProfile) string {
	budget := utils.FormatThousands(p.Budget)

	return fmt.Sprintf(`あなたは防災の専門家です。以下の家庭に最適な防災グッズを5〜7個提案してください。

【家庭情報】
- 家族人数: %d人
- 住居タイプ: %s
- 地域: %s
- 高齢者: %s
- 子供: %s
- ペット: %s
- 予算: %s円
- 現在の備蓄状況: %s

【重要な指示】
- 具体的なブランド名・商品名で提案してください（例：「パナソニック 手回し充電ラジオ RF-TJ20」）
- 価格は実際の市場価格に基づいてください
- 予算 %s円 の範囲内で優先度順に提案
- 家族構成に合わせた提案（高齢者向け、子供向け、ペット向けを考慮）
- priority: "essential"（必須）, "recommended"（推奨）, "optional"（あると便利）で分類
- category は次のいずれか: 水、食料、照明、通信、衛生、救急、避難用品

【出力形式】JSON配列のみを出力してください
[
    {
        "name": "ブランド名 - 商品名",
        "price": 3000,
        "description": "商品の説明（50字以内）",
        "reason": "この家庭に必要な理由（50字以内）",
        "priority": "essential",
        "category": "カテゴリ"
    }
]`,
		p.FamilySize,
		p.HousingLabel(),
		p.Region,
		yesNo(p.HasElderly),
		yesNo(p.HasChildren),
		yesNo(p.HasPets),
		budget,
		p.PreparednessLabel(),
		budget,
	)
}
