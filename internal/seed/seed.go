// Package seed loads the studio's launch content into the in-memory stores.
package seed

import (
	"context"
	"fmt"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
)

func projects() []project.CreateRequest {
	return []project.CreateRequest{
		{
			Title:    "فيلا الياسمين",
			Category: "سكني فاخر",
			Desc:     "فيلا عصرية تتميز بالواجهات الزجاجية الكبيرة التي تدمج الداخل بالخارج، مع استخدام مواد طبيعية مستدامة.",
			FullDesc: "تم تصميم هذه الفيلا بعناية فائقة لتوفير تجربة معمارية فريدة. تتميز بتصميم حديث يجمع بين الأناقة والوظيفة، مع استخدام مواد بيئية مستدامة. الواجهات الزجاجية الكبيرة توفر إضاءة طبيعية وفيرة وتدمج الداخل بسلاسة مع الحدائق الخارجية. يضم المشروع مساحات معيشة مفتوحة، حدائق داخلية، ونظام تكييف ذكي يوفر الطاقة.",
			Image:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?q=80&w=2071&auto=format&fit=crop",
			Featured: true,
			Year:     "2023",
			Location: "الرياض",
			Client:   "عائلة خاصة",
			Area:     "850 متر مربع",
		},
		{
			Title:    "مقر شركة القمة",
			Category: "تجاري / مكاتب",
			Desc:     "تصميم داخلي لمقر شركة تقنية، يركز على خلق بيئة عمل تعاونية مع مساحات مفتوحة وغرف اجتماعات ذكية.",
			FullDesc: "مقر حديث مصمم بعناية لإلهام الإبداع والتعاون. يتضمن مساحات عمل مفتوحة وغرف اجتماعات مجهزة بأحدث التقنيات. تم استخدام الألوان الهادئة والمواد الطبيعية لتقليل التوتر وزيادة الإنتاجية. يحتوي المكتب أيضاً على مناطق استراحة ترفيهية وكافيتريا بتصميم عصري.",
			Image:    "https://images.unsplash.com/photo-1497366811353-6870744d04b2?q=80&w=2069&auto=format&fit=crop",
			Year:     "2023",
			Location: "الرياض",
			Client:   "شركة تقنية",
			Area:     "1200 متر مربع",
		},
		{
			Title:    "منتجع البحر الأحمر",
			Category: "سياحة وضيافة",
			Desc:     "منتجع بيئي فاخر يمتد على الساحل، مصمم ليتناغم مع الطبيعة المحيطة بأقل تأثير بيئي ممكن.",
			FullDesc: "منتجع سياحي فاخر يجمع بين الرفاهية والاستدامة البيئية. تم تصميمه ليتناغم تماماً مع محيطه الطبيعي باستخدام مواد محلية وتقنيات بناء تقليدية مطورة. يوفر المنتجع فيلات خاصة، مطاعم عالمية، وسبا صحي متكامل، كل ذلك بإطلالات ساحرة على البحر الأحمر.",
			Image:    "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=2070&auto=format&fit=crop",
			Year:     "2022",
			Location: "ساحل البحر الأحمر",
			Client:   "شركة سياحة",
			Area:     "5000 متر مربع",
		},
		{
			Title:    "شقة النخيل",
			Category: "مودرن سكني",
			Desc:     "شقة بنتهاوس بتصميم مينيماليست (تبسيطي)، تركز على الخطوط النظيفة والألوان الهادئة لتوفير أقصى درجات الراحة.",
			FullDesc: "شقة بنتهاوس فخمة بتصميم مينيماليست يركز على البساطة والأناقة. توفر إطلالات بانورامية ومساحات مفتوحة. الأثاث تم اختياره بعناية ليكمل التصميم المعماري، مع التركيز على الراحة والوظيفة. الإضاءة المدروسة تلعب دوراً كبيراً في خلق جو دافئ ومريح.",
			Image:    "https://images.unsplash.com/photo-1600607686527-6fb886090705?q=80&w=2000&auto=format&fit=crop",
			Year:     "2023",
			Location: "جدة",
			Client:   "عميل خاص",
			Area:     "350 متر مربع",
		},
	}
}

func reviews() []review.CreateRequest {
	return []review.CreateRequest{
		{
			ID:    1,
			Text:  "العمل مع فريق ايشان كان تجربة استثنائية. دقة في المواعيد، إبداع في التصميم، وفهم عميق لاحتياجاتنا. لقد حولوا منزل أحلامنا إلى حقيقة.",
			Name:  "خالد العتيبي",
			Role:  "مالك فيلا خاصة",
			Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:    2,
			Text:  "احترافية عالية في التعامل وتصاميم تفوق التوقعات. اهتمامهم بالتفاصيل الصغيرة هو ما يميزهم عن غيرهم في السوق.",
			Name:  "منى الزهراني",
			Role:  "مديرة تسويق",
			Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=2070&auto=format&fit=crop",
		},
	}
}

// Load publishes the launch content. Stores prepend on insert, so requests
// run in reverse to keep the display order.
func Load(ctx context.Context, projectSvc *project.Service, reviewSvc *review.Service) error {
	reqs := projects()
	for i := len(reqs) - 1; i >= 0; i-- {
		if _, err := projectSvc.Create(ctx, reqs[i]); err != nil {
			return fmt.Errorf("seeding project %q: %w", reqs[i].Title, err)
		}
	}
	revs := reviews()
	for i := len(revs) - 1; i >= 0; i-- {
		if _, err := reviewSvc.Create(ctx, revs[i]); err != nil {
			return fmt.Errorf("seeding review %q: %w", revs[i].Name, err)
		}
	}
	return nil
}
