package seed

import "github.com/acarlier/MT-BookingService/internal/domain"

// Services возвращает стартовый каталог услуг практики.
// Тексты отображаются клиенту как есть, поэтому остаются на французском.
func Services() []*domain.Service {
	return []*domain.Service{
		{
			Name:            "Chi Nei Tsang",
			Description:     "Technique ancestrale chinoise de massage abdominal pour libérer les émotions et harmoniser l'énergie vitale. Favorise la digestion et l'équilibre intérieur.",
			DurationMinutes: 60,
			Price:           85,
			Image:           "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategoryRelaxation,
		},
		{
			Name:            "Massage du Visage",
			Description:     "Soin du visage relaxant et anti-âge. Techniques douces pour détendre les muscles faciaux, améliorer la circulation et favoriser la régénération cellulaire.",
			DurationMinutes: 45,
			Price:           65,
			Image:           "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategoryRelaxation,
		},
		{
			Name:            "La Trame",
			Description:     "Technique douce de libération des mémoires corporelles et émotionnelles. Harmonise la structure du corps et libère les blocages énergétiques profonds.",
			DurationMinutes: 75,
			Price:           95,
			Image:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategoryRelaxation,
		},
		{
			Name:            "Massage Thaï Traditionnel",
			Description:     "Technique ancestrale thaïlandaise combinant acupression, étirements et mobilisations articulaires. Libère les tensions et améliore la flexibilité.",
			DurationMinutes: 90,
			Price:           100,
			Image:           "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategoryThai,
		},
		{
			Name:            "Thaï Foot Massage",
			Description:     "Massage des pieds et jambes selon la tradition thaïlandaise. Stimule les points réflexes et améliore la circulation sanguine et lymphatique.",
			DurationMinutes: 60,
			Price:           75,
			Image:           "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategoryThai,
		},
		{
			Name:            "Drainage Lymphatique",
			Description:     "Technique douce de stimulation du système lymphatique pour éliminer les toxines, réduire la rétention d'eau et stimuler l'immunité.",
			DurationMinutes: 60,
			Price:           85,
			Image:           "https://images.unsplash.com/photo-1583416750470-965b2707b355?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategorySpecialty,
		},
		{
			Name:            "Massage Sportif",
			Description:     "Spécialisé pour les athlètes et sportifs. Optimise la récupération musculaire, prévient les blessures et améliore les performances.",
			DurationMinutes: 75,
			Price:           90,
			Image:           "https://images.unsplash.com/photo-1560750588-73207b1ef5b8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategorySpecialty,
		},
		{
			Name:            "Tête Cou Épaules",
			Description:     "Massage ciblé sur la nuque, les épaules et le haut du dos pour soulager les tensions liées au stress et à la posture. Idéal pour les personnes travaillant sur écran.",
			DurationMinutes: 45,
			Price:           70,
			Image:           "https://images.unsplash.com/photo-1515377905703-c4788e51af15?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Category:        domain.CategorySpecialty,
		},
	}
}
